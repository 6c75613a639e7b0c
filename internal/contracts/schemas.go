package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"catalog-gateway/internal/core/domain"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Добавляем все схемы как ресурсы, чтобы они могли ссылаться
	// друг на друга через `$ref`
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, _ := schemasFS.Open(path)
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				log.Fatalf("failed to add schema resource %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Снова обходим для компиляции и регистрации
	err = fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			schema, err := compiler.Compile(path)
			if err != nil {
				log.Fatalf("could not compile schema %s: %v", path, err)
			}

			key := strings.TrimSuffix(strings.TrimPrefix(path, "schemas/"), ".json")
			compiledSchemas[key] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// validate проверяет JSON-документ по зарегистрированной схеме.
func validate(schemaKey string, body []byte) error {
	schema, ok := compiledSchemas[schemaKey]
	if !ok {
		return fmt.Errorf("schema '%s' not found", schemaKey)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("document is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}

// ValidateApplicationForm проверяет заявку по схеме application_form.
// Вызывается после нормализации телефона, так что pattern схемы
// ожидает уже каноничный формат +7XXXXXXXXXX.
func ValidateApplicationForm(form domain.ApplicationForm) error {
	doc, err := json.Marshal(map[string]string{
		"name":         form.Name,
		"phone":        form.Phone,
		"email":        form.Email,
		"message":      form.Message,
		"request_type": form.RequestType,
		"quiz_answers": form.QuizAnswers,
		"land_plot_id": form.LandPlotID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal application form: %w", err)
	}

	return validate("application_form", doc)
}
