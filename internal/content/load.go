package content

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var (
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)

	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Load reads a content override from path. Profile fields left empty in the file keep their
// default values; a projects list, when present, replaces the default table.
func Load(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, folioerrors.NewParseError(path, 0, err)
	}

	var override Content
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Content{}, folioerrors.NewParseError(path, extractLine(err), err)
	}

	merged := merge(Default(), override)
	if err := Validate(merged); err != nil {
		return Content{}, err
	}
	return merged, nil
}

// Validate checks content against its struct rules and for duplicate project ids.
func Validate(c Content) error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[int]struct{}, len(c.Projects))
	for i, p := range c.Projects {
		if _, dup := seen[p.ID]; dup {
			return folioerrors.NewValidationError(fmt.Sprintf("projects[%d].id", i), fmt.Sprintf("duplicate project id %d", p.ID), nil)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func merge(base, override Content) Content {
	out := base
	p := override.Profile

	setIf := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	setIf(&out.Profile.Name, p.Name)
	setIf(&out.Profile.Role, p.Role)
	setIf(&out.Profile.Badge, p.Badge)
	setIf(&out.Profile.Headline, p.Headline)
	setIf(&out.Profile.About, p.About)
	setIf(&out.Profile.Greeting, p.Greeting)
	setIf(&out.Profile.ProjectsBlurb, p.ProjectsBlurb)
	setIf(&out.Profile.ContactBlurb, p.ContactBlurb)
	setIf(&out.Profile.Email, p.Email)
	setIf(&out.Profile.CVPath, p.CVPath)
	setIf(&out.Profile.Footer, p.Footer)
	if len(p.Stats) > 0 {
		out.Profile.Stats = p.Stats
	}

	if override.Projects != nil {
		out.Projects = override.Projects
		// Projects without an id are numbered after the highest explicit one.
		next := 0
		for _, project := range out.Projects {
			next = max(next, project.ID)
		}
		for i := range out.Projects {
			if out.Projects[i].ID == 0 {
				next++
				out.Projects[i].ID = next
			}
		}
	}
	return out
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("link", func(fl validator.FieldLevel) bool {
			return isLink(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// isLink accepts "#", "#anchor", site-relative paths, mailto: and absolute http(s) URLs.
func isLink(target string) bool {
	if target == "" || strings.TrimSpace(target) != target {
		return false
	}
	if strings.HasPrefix(target, "#") {
		return true
	}
	if strings.HasPrefix(target, "/") {
		return !strings.Contains(target, "\x00")
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed.Host != ""
	case "mailto":
		return parsed.Opaque != ""
	}
	return false
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return folioerrors.NewValidationError(field, msg, err)
	}

	return folioerrors.NewValidationError("content", err.Error(), err)
}

// yamlishFieldName turns Content.Projects[0].Title into projects[0].title.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
