package db

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-missions-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.RecruitmentRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RecruitmentRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.MissionAssignation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры MissionAssignation")
	}
	if err := DB.AutoMigrate(&dbmodels.MissionExpense{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры MissionExpense")
	}
	if err := DB.AutoMigrate(&dbmodels.MissionCompensation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры MissionCompensation")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalFlowStep{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalFlowStep")
	}
	if err := DB.AutoMigrate(&dbmodels.ValidationRecord{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ValidationRecord")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	// инвариант: не более одной незакрытой записи согласования на сущность
	err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_validation_single_pending
		ON validation_records (subject_type, subject_id) WHERE state = 'PENDING'`).Error
	if err != nil {
		return errors.Wrap(err, "ошибка создания индекса idx_validation_single_pending")
	}
	if err = EnsureSequences(); err != nil {
		return err
	}
	log.Info("Миграция прошла успешно")
	return nil
}

// имена последовательностей для генератора читаемых кодов
const (
	SeqEmployeeID           = "seq_employee_id"
	SeqRecruitmentRequestID = "seq_recruitment_request_id"
	SeqMissionID            = "seq_mission_id"
)

// EnsureSequences создаёт последовательности для встроенных типов сущностей.
// Генератор кодов сам последовательности не создаёт
func EnsureSequences() error {
	for _, name := range []string{SeqEmployeeID, SeqRecruitmentRequestID, SeqMissionID} {
		err := DB.Exec(fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s START WITH 1 INCREMENT BY 1", name)).Error
		if err != nil {
			return errors.Wrapf(err, "ошибка создания последовательности %s", name)
		}
	}
	return nil
}
