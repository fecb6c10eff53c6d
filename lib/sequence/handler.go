package sequence

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-missions-backend/db"
)

const (
	DefaultSuffixLength = 6
	DefaultSeparator    = "-"
)

var (
	// ErrSequenceNotFound последовательность не создана в БД
	ErrSequenceNotFound = errors.New("последовательность не существует — её необходимо создать заранее")
	// ErrInvalidParam некорректные параметры генерации
	ErrInvalidParam = errors.New("некорректные параметры генерации кода")
)

// undefined_table: nextval по несуществующей последовательности
const pgUndefinedTable = "42P01"

var sequenceNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Provider выдаёт уникальные человекочитаемые коды на основе
// последовательностей БД. Значение последовательности расходуется даже при
// откате внешней транзакции — пропуски в нумерации допустимы
type Provider interface {
	Issue(sequenceName, prefix string, suffixLength int, separator string) (string, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db: db.DB,
	}
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Issue(sequenceName, prefix string, suffixLength int, separator string) (string, error) {
	if err := validateParams(sequenceName, prefix, suffixLength); err != nil {
		return "", err
	}
	var value int64
	query := fmt.Sprintf("SELECT nextval('%s')", pq.QuoteIdentifier(sequenceName))
	err := i.db.Raw(query).Scan(&value).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
			return "", errors.Wrapf(ErrSequenceNotFound, "последовательность %s", sequenceName)
		}
		log.WithField("sequence", sequenceName).
			WithError(err).
			Error("ошибка получения значения последовательности")
		return "", errors.Wrapf(err, "ошибка получения значения последовательности %s", sequenceName)
	}
	return FormatCode(prefix, separator, suffixLength, value), nil
}

// FormatCode собирает код вида JOB-000042
func FormatCode(prefix, separator string, suffixLength int, value int64) string {
	return fmt.Sprintf("%s%s%0*d", prefix, separator, suffixLength, value)
}

func validateParams(sequenceName, prefix string, suffixLength int) error {
	if strings.TrimSpace(sequenceName) == "" {
		return errors.Wrap(ErrInvalidParam, "не указано имя последовательности")
	}
	if !sequenceNameRe.MatchString(sequenceName) {
		return errors.Wrapf(ErrInvalidParam, "недопустимое имя последовательности: %s", sequenceName)
	}
	if strings.TrimSpace(prefix) == "" {
		return errors.Wrap(ErrInvalidParam, "не указан префикс кода")
	}
	if suffixLength <= 0 {
		return errors.Wrap(ErrInvalidParam, "длина числовой части должна быть положительной")
	}
	return nil
}
