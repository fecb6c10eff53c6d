package recruitmentapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-missions-backend/models"
	apimodels "hr-missions-backend/models/api"
	dbmodels "hr-missions-backend/models/db"
)

type RecruitmentRequestData struct {
	Position        string `json:"position"`
	Department      string `json:"department"`
	OpenedPositions int    `json:"opened_positions"`
	Justification   string `json:"justification"`
}

func (v RecruitmentRequestData) Validate() error {
	if v.Position == "" {
		return errors.New("не указана должность")
	}
	if v.OpenedPositions <= 0 {
		return errors.New("количество позиций должно быть положительным")
	}
	return nil
}

type RecruitmentRequestFilter struct {
	apimodels.Pagination
	Status models.RequestStatus `json:"status,omitempty"`
}

type RecruitmentRequestView struct {
	RecruitmentRequestData
	ID          string               `json:"id"`
	Code        string               `json:"code"`
	AuthorID    string               `json:"author_id"`
	AuthorName  string               `json:"author_name"`
	Status      models.RequestStatus `json:"status"`
	StatusHuman string               `json:"status_human"`
	CreatedAt   time.Time            `json:"created_at"`
}

func RecruitmentRequestConvert(rec dbmodels.RecruitmentRequest) RecruitmentRequestView {
	authorName := ""
	if rec.Author != nil {
		authorName = rec.Author.GetFullName()
	}
	return RecruitmentRequestView{
		RecruitmentRequestData: RecruitmentRequestData{
			Position:        rec.Position,
			Department:      rec.Department,
			OpenedPositions: rec.OpenedPositions,
			Justification:   rec.Justification,
		},
		ID:          rec.ID,
		Code:        rec.Code,
		AuthorID:    rec.AuthorID,
		AuthorName:  authorName,
		Status:      rec.Status,
		StatusHuman: rec.Status.ToHuman(),
		CreatedAt:   rec.CreatedAt,
	}
}
