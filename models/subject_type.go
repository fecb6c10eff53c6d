package models

// SubjectType определяет тип сущности, проходящей цепочку согласования
type SubjectType string

const (
	SubjectRecruitmentRequest SubjectType = "RECRUITMENT_REQUEST"
	SubjectMissionAssignation SubjectType = "MISSION_ASSIGNATION"
)

var subjectTypeHumanName = map[SubjectType]string{
	SubjectRecruitmentRequest: "Заявка на подбор",
	SubjectMissionAssignation: "Командировка",
}

func (s SubjectType) ToHuman() string {
	if human, exist := subjectTypeHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s SubjectType) IsValid() bool {
	_, exist := subjectTypeHumanName[s]
	return exist
}
