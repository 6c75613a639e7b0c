package domain

// WorkingHour — один день недели в расписании работы офиса.
// DayOfWeek: 0 = понедельник, 6 = воскресенье.
type WorkingHour struct {
	ID        int     `json:"id,omitempty"`
	DayOfWeek int     `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	IsActive  bool    `json:"is_active"`
}

// Contact — полная контактная информация для шапки/подвала сайта.
// Backend не хранит email, поле всегда nil.
type Contact struct {
	ID            string        `json:"id"`
	Phone         *string       `json:"phone"`
	Whatsapp      *string       `json:"whatsapp"`
	Telegram      *string       `json:"telegram"`
	Email         *string       `json:"email"`
	Address       *string       `json:"address"`
	OfficeAddress *string       `json:"office_address"`
	Latitude      *float64      `json:"latitude"`
	Longitude     *float64      `json:"longitude"`
	WorkTimeFrom  *string       `json:"workTimeFrom"`
	WorkTimeTo    *string       `json:"workTimeTo"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
	WorkingHours  []WorkingHour `json:"working_hours"`
}

// ContactInfo — урезанная форма контактов для страницы «Контакты».
type ContactInfo struct {
	ID            string        `json:"id"`
	Phone         string        `json:"phone"`
	Whatsapp      *string       `json:"whatsapp"`
	Email         *string       `json:"email"`
	OfficeAddress *string       `json:"office_address"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
	WorkingHours  []WorkingHour `json:"working_hours"`
}

// GenerateWorkingHours синтезирует расписание на 7 дней из пары строк
// workTimeFrom/workTimeTo. Если хотя бы одно время не задано — все дни
// выходные. Иначе Пн-Пт (0-4) рабочие с заданным временем, Сб-Вс (5-6)
// выходные с nil временем.
func GenerateWorkingHours(workTimeFrom, workTimeTo *string) []WorkingHour {
	hours := make([]WorkingHour, 0, 7)

	if workTimeFrom == nil || workTimeTo == nil {
		for day := 0; day < 7; day++ {
			hours = append(hours, WorkingHour{
				ID:        day + 1,
				DayOfWeek: day,
			})
		}
		return hours
	}

	for day := 0; day < 7; day++ {
		isWeekend := day == 5 || day == 6
		wh := WorkingHour{
			ID:        day + 1,
			DayOfWeek: day,
			IsActive:  !isWeekend,
		}
		if !isWeekend {
			from := *workTimeFrom
			to := *workTimeTo
			wh.StartTime = &from
			wh.EndTime = &to
		}
		hours = append(hours, wh)
	}

	return hours
}
