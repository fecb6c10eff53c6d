package missionapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-missions-backend/models"
	apimodels "hr-missions-backend/models/api"
	dbmodels "hr-missions-backend/models/db"
)

type MissionData struct {
	AssigneeID  string    `json:"assignee_id"`
	Destination string    `json:"destination"`
	Purpose     string    `json:"purpose"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

func (v MissionData) Validate() error {
	if v.AssigneeID == "" {
		return errors.New("не указан командируемый сотрудник")
	}
	if v.Destination == "" {
		return errors.New("не указано место командировки")
	}
	if v.StartDate.IsZero() || v.EndDate.IsZero() {
		return errors.New("не указаны даты командировки")
	}
	if v.EndDate.Before(v.StartDate) {
		return errors.New("дата окончания раньше даты начала")
	}
	return nil
}

type MissionFilter struct {
	apimodels.Pagination
	Status     models.RequestStatus `json:"status,omitempty"`
	AssigneeID string               `json:"assignee_id,omitempty"`
}

type ExpenseData struct {
	Kind     string  `json:"kind" form:"kind"`
	Amount   float64 `json:"amount" form:"amount"`
	Currency string  `json:"currency" form:"currency"`
}

func (v ExpenseData) Validate() error {
	if v.Kind == "" {
		return errors.New("не указан вид расхода")
	}
	if v.Amount <= 0 {
		return errors.New("сумма расхода должна быть положительной")
	}
	if v.Currency == "" {
		return errors.New("не указана валюта")
	}
	return nil
}

type ExpenseView struct {
	ExpenseData
	ID         string `json:"id"`
	ReceiptKey string `json:"receipt_key,omitempty"`
}

type CompensationView struct {
	Amount        float64         `json:"amount"`
	PayState      models.PayState `json:"pay_state"`
	PayStateHuman string          `json:"pay_state_human"`
	PaidAt        *time.Time      `json:"paid_at"`
}

type MissionView struct {
	MissionData
	ID           string               `json:"id"`
	Code         string               `json:"code"`
	AuthorID     string               `json:"author_id"`
	AuthorName   string               `json:"author_name"`
	AssigneeName string               `json:"assignee_name"`
	Status       models.RequestStatus `json:"status"`
	StatusHuman  string               `json:"status_human"`
	Expenses     []ExpenseView        `json:"expenses"`
	Compensation *CompensationView    `json:"compensation,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

func MissionConvert(rec dbmodels.MissionAssignation) MissionView {
	authorName := ""
	if rec.Author != nil {
		authorName = rec.Author.GetFullName()
	}
	assigneeName := ""
	if rec.Assignee != nil {
		assigneeName = rec.Assignee.GetFullName()
	}
	expenses := make([]ExpenseView, 0, len(rec.Expenses))
	for _, exp := range rec.Expenses {
		expenses = append(expenses, ExpenseView{
			ExpenseData: ExpenseData{
				Kind:     exp.Kind,
				Amount:   exp.Amount,
				Currency: exp.Currency,
			},
			ID:         exp.ID,
			ReceiptKey: exp.ReceiptKey,
		})
	}
	var compensation *CompensationView
	if rec.Compensation != nil {
		compensation = &CompensationView{
			Amount:        rec.Compensation.Amount,
			PayState:      rec.Compensation.PayState,
			PayStateHuman: rec.Compensation.PayState.ToHuman(),
			PaidAt:        rec.Compensation.PaidAt,
		}
	}
	return MissionView{
		MissionData: MissionData{
			AssigneeID:  rec.AssigneeID,
			Destination: rec.Destination,
			Purpose:     rec.Purpose,
			StartDate:   rec.StartDate,
			EndDate:     rec.EndDate,
		},
		ID:           rec.ID,
		Code:         rec.Code,
		AuthorID:     rec.AuthorID,
		AuthorName:   authorName,
		AssigneeName: assigneeName,
		Status:       rec.Status,
		StatusHuman:  rec.Status.ToHuman(),
		Expenses:     expenses,
		Compensation: compensation,
		CreatedAt:    rec.CreatedAt,
	}
}
