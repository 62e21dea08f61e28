package dtos

import (
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/validate"

	"calendar.nationaldaily.com/apps/almanac/internal/models"
)

type CreateEventDto struct {
	Title        string `json:"title"         schema:"title"`
	OriginalDate string `json:"originalDate"  schema:"originalDate"`
	Description  string `json:"description"   schema:"description"`
	Category     string `json:"category"      schema:"category"`
}

func (dto *CreateEventDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "title", dto.Title, validate.IsNotEmpty)
	validate.Check(v, "originalDate", dto.OriginalDate, validate.IsNotEmpty)
	validate.Check(v, "description", dto.Description, validate.IsNotEmpty)
	validate.Check(v, "category", dto.Category, validate.IsNotEmpty)

	ok := v.Valid()
	errs := v.Errors()

	if dto.OriginalDate != "" {
		_, err := time.Parse(models.OriginalDateLayout, dto.OriginalDate)
		if err != nil {
			ok = false
			errs["originalDate"] = "must be a valid date in YYYY-MM-DD format"
		}
	}

	return ok, errs
}

type AssignEditorDto struct {
	Name  string `json:"name"  schema:"name"`
	Email string `json:"email" schema:"email"`
}

func (dto *AssignEditorDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "name", dto.Name, validate.IsNotEmpty)
	validate.Check(v, "email", dto.Email, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
