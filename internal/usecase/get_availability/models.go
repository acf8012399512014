package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// Form вид ответа
type Form string

const (
	FormMerged Form = "merged" // свободные интервалы
	FormSlots  Form = "slots"  // слоты для записи
)

// Valid проверяет вид ответа
func (f Form) Valid() bool {
	return f == FormMerged || f == FormSlots
}

// Request модель запроса доступности
type Request struct {
	From    time.Time          // первая дата (полночь UTC), включительно
	To      time.Time          // последняя дата (полночь UTC), не включительно
	StaffID *int64             // только этот сотрудник
	ZoneID  *int64             // только назначения в эту зону
	Mode    domain.MeetingMode // пусто = любой режим
	Form    Form
}

// Response модель ответа
type Response struct {
	From      time.Time // фактический диапазон после ограничения окном записи
	To        time.Time
	Form      Form
	Mode      domain.MeetingMode
	Intervals []domain.FreeInterval   // для FormMerged
	Slots     []domain.SlotCandidate // для FormSlots
}
