package approvalflowhandler

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-missions-backend/db"
	approvalflowstore "hr-missions-backend/lib/approval-flow/store"
	employeestore "hr-missions-backend/lib/employee/store"
	"hr-missions-backend/models"
	workflowapimodels "hr-missions-backend/models/api/workflow"
	dbmodels "hr-missions-backend/models/db"
)

// ErrBrokenFlow цепочка согласования настроена некорректно
// (дублирующиеся номера этапов считаются ошибкой ввода данных)
var ErrBrokenFlow = errors.New("цепочка согласования настроена некорректно")

type Provider interface {
	// LoadFlow возвращает шаги цепочки по порядку возрастания номера этапа.
	// Пустая цепочка означает автосогласование при создании
	LoadFlow(subjectType models.SubjectType) ([]dbmodels.ApprovalFlowStep, error)
	Get(subjectType models.SubjectType) ([]workflowapimodels.FlowStepView, error)
	Save(subjectType models.SubjectType, steps []workflowapimodels.FlowStepData) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         approvalflowstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:         approvalflowstore.NewInstance(tx),
		employeeStore: employeestore.NewInstance(tx),
	}
}

func NewInstance(store approvalflowstore.Provider, employeeStore employeestore.Provider) Provider {
	return impl{
		store:         store,
		employeeStore: employeeStore,
	}
}

type impl struct {
	store         approvalflowstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) LoadFlow(subjectType models.SubjectType) ([]dbmodels.ApprovalFlowStep, error) {
	list, err := i.store.ListByType(subjectType)
	if err != nil {
		return nil, err
	}
	ordersMap := map[int]bool{}
	for _, step := range list {
		if ordersMap[step.StepOrder] {
			return nil, errors.Wrapf(ErrBrokenFlow, "этап %v задан более одного раза", step.StepOrder)
		}
		ordersMap[step.StepOrder] = true
	}
	return list, nil
}

func (i impl) Get(subjectType models.SubjectType) ([]workflowapimodels.FlowStepView, error) {
	list, err := i.store.ListByType(subjectType)
	if err != nil {
		return nil, err
	}
	result := make([]workflowapimodels.FlowStepView, 0, len(list))
	for _, rec := range list {
		result = append(result, workflowapimodels.FlowStepConvert(rec))
	}
	return result, nil
}

func (i impl) Save(subjectType models.SubjectType, steps []workflowapimodels.FlowStepData) (hMsg string, err error) {
	usersMap := map[string]bool{}
	ordersMap := map[int]bool{}
	for _, step := range steps {
		user, err := i.employeeStore.GetByID(step.ApproverID)
		if err != nil {
			return "", err
		}
		if user == nil {
			return fmt.Sprintf("согласующий с этапа %v не найден в справочнике сотрудников", step.StepOrder), nil
		}
		if usersMap[step.ApproverID] {
			return fmt.Sprintf("сотрудник %v уже был указан на ранних этапах", user.GetFullName()), nil
		}
		if ordersMap[step.StepOrder] {
			return fmt.Sprintf("этап %v указан более одного раза", step.StepOrder), nil
		}
		usersMap[step.ApproverID] = true
		ordersMap[step.StepOrder] = true
	}
	err = i.store.DeleteByType(subjectType)
	if err != nil {
		return "", err
	}

	if len(steps) == 0 {
		return "", nil
	}
	for _, step := range steps {
		rec := dbmodels.ApprovalFlowStep{
			SubjectType: subjectType,
			StepOrder:   step.StepOrder,
			ApproverID:  step.ApproverID,
		}
		_, err = i.store.Create(rec)
		if err != nil {
			return "", errors.Wrapf(err, "Ошибка сохранения цепочки согласования, step=%+v", step)
		}
	}
	return "", nil
}
