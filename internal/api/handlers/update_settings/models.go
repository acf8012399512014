package update_settings

import (
	"github.com/m04kA/SMC-ZoneBooking/internal/service/settings/models"
)

// UpdateSettingsRequest HTTP request model: ключ настройки -> значение или null
type UpdateSettingsRequest map[string]*int

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r UpdateSettingsRequest) ToServiceRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{Values: r}
}
