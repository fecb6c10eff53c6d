package models

// RequestStatus статус сущности, проходящей согласование
type RequestStatus string

const (
	RequestStatusCreated    RequestStatus = "CREATED"
	RequestStatusPending    RequestStatus = "PENDING"
	RequestStatusApproved   RequestStatus = "APPROVED"
	RequestStatusRejected   RequestStatus = "REJECTED"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
)

var requestStatusHumanName = map[RequestStatus]string{
	RequestStatusCreated:    "Создана",
	RequestStatusPending:    "На согласовании",
	RequestStatusApproved:   "Согласована",
	RequestStatusRejected:   "Отклонена",
	RequestStatusInProgress: "В работе",
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// AllowDecide можно ли согласовывать/отклонять в текущем статусе
func (s RequestStatus) AllowDecide() bool {
	return s == RequestStatusCreated || s == RequestStatusPending
}

func (s RequestStatus) IsFinal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// AllowEdit правка данных допустима только до финального решения
func (s RequestStatus) AllowEdit() bool {
	return !s.IsFinal() && s != RequestStatusInProgress
}
