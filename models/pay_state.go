package models

// PayState состояние выплаты компенсации по командировке
type PayState string

const (
	PayStateNotPaid PayState = "NOT_PAID"
	PayStatePaid    PayState = "PAID"
)

var payStateHumanName = map[PayState]string{
	PayStateNotPaid: "Не выплачено",
	PayStatePaid:    "Выплачено",
}

func (s PayState) ToHuman() string {
	if human, exist := payStateHumanName[s]; exist {
		return human
	}
	return string(s)
}
