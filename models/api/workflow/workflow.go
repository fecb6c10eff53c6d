package workflowapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-missions-backend/models"
	dbmodels "hr-missions-backend/models/db"
)

type FlowSteps struct {
	Steps []FlowStepData `json:"steps"`
}

func (v FlowSteps) Validate() error {
	for _, item := range v.Steps {
		err := item.Validate()
		if err != nil {
			return err
		}
	}
	return nil
}

type FlowStepData struct {
	StepOrder  int    `json:"step_order"`
	ApproverID string `json:"approver_id"`
}

func (v FlowStepData) Validate() error {
	if v.ApproverID == "" {
		return errors.New("отсутствует идентификатор согласующего")
	}
	if v.StepOrder < 0 {
		return errors.New("номер этапа не может быть отрицательным")
	}
	return nil
}

type FlowStepView struct {
	FlowStepData
	ID           string `json:"id"`
	ApproverName string `json:"approver_name"`
}

func FlowStepConvert(rec dbmodels.ApprovalFlowStep) FlowStepView {
	approverName := ""
	if rec.Approver != nil {
		approverName = rec.Approver.GetFullName()
	}
	return FlowStepView{
		FlowStepData: FlowStepData{
			StepOrder:  rec.StepOrder,
			ApproverID: rec.ApproverID,
		},
		ID:           rec.ID,
		ApproverName: approverName,
	}
}

type DecisionData struct {
	Comment string `json:"comment"`
}

func (v DecisionData) Validate() error {
	return nil
}

type RejectData struct {
	Comment string `json:"comment"`
}

func (v RejectData) Validate() error {
	if v.Comment == "" {
		return errors.New("отсутствует комментарий: причину отклонения необходимо указать")
	}
	return nil
}

type ValidationRecordView struct {
	ID           string               `json:"id"`
	ApproverID   string               `json:"approver_id"`
	ApproverName string               `json:"approver_name"`
	StepOrder    int                  `json:"step_order"`
	State        models.ApprovalState `json:"state"`
	Comment      string               `json:"comment"`
	DecidedAt    *time.Time           `json:"decided_at"`
}

func ValidationRecordConvert(rec dbmodels.ValidationRecord) ValidationRecordView {
	approverName := ""
	if rec.Approver != nil {
		approverName = rec.Approver.GetFullName()
	}
	return ValidationRecordView{
		ID:           rec.ID,
		ApproverID:   rec.ApproverID,
		ApproverName: approverName,
		StepOrder:    rec.StepOrder,
		State:        rec.State,
		Comment:      rec.Comment,
		DecidedAt:    rec.DecidedAt,
	}
}

type ApprovalHistoryView struct {
	ID           string               `json:"id"`
	RecordID     string               `json:"record_id"`
	ApproverID   string               `json:"approver_id"`
	ApproverName string               `json:"approver_name"`
	State        models.ApprovalState `json:"state"`
	Comment      string               `json:"comment"`
	Changes      dbmodels.Snapshot    `json:"changes"` // снимок сущности на момент решения
	CreatedAt    time.Time            `json:"created_at"`
}

func ApprovalHistoryConvert(rec dbmodels.ApprovalHistory) ApprovalHistoryView {
	approverName := ""
	if rec.Approver != nil {
		approverName = rec.Approver.GetFullName()
	}
	return ApprovalHistoryView{
		ID:           rec.ID,
		RecordID:     rec.RecordID,
		ApproverID:   rec.ApproverID,
		ApproverName: approverName,
		State:        rec.State,
		Comment:      rec.Comment,
		Changes:      rec.Changes,
		CreatedAt:    rec.CreatedAt,
	}
}
