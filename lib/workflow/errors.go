package workflowhandler

import "github.com/pkg/errors"

// Типизированные ошибки переходов; наружу их переводит в HTTP-статусы
// только контроллер
var (
	ErrSubjectNotFound  = errors.New("сущность не найдена")
	ErrNoPendingStep    = errors.New("нет этапа, ожидающего решения")
	ErrWrongApprover    = errors.New("за текущий этап отвечает другой сотрудник")
	ErrAlreadyFinalized = errors.New("решение по заявке уже принято")
	ErrAlreadyStarted   = errors.New("согласование уже запущено")
	ErrCommentRequired  = errors.New("причину отклонения необходимо указать")
)
