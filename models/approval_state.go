package models

// ApprovalState состояние одного этапа согласования
type ApprovalState string

const (
	AStatePending  ApprovalState = "PENDING"
	AStateApproved ApprovalState = "APPROVED"
	AStateRejected ApprovalState = "REJECTED"
)

var approvalStateHumanName = map[ApprovalState]string{
	AStatePending:  "Ожидает решения",
	AStateApproved: "Согласовано",
	AStateRejected: "Отклонено",
}

func (s ApprovalState) ToHuman() string {
	if human, exist := approvalStateHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApprovalState) IsDecided() bool {
	return s == AStateApproved || s == AStateRejected
}
