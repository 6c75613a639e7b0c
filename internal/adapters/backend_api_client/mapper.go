package backend_api_client

import (
	"fmt"
	"strconv"
	"strings"

	"catalog-gateway/internal/core/domain"
)

// Адаптеры wire → display. Все функции здесь чистые и тотальные:
// отсутствующее опциональное поле дает пустую строку, пустой срез или
// nil, но никогда не панику. Единственное исключение — обязательные
// поля (id, title): запись без них адаптер честно отдает ошибкой,
// выдумывать заголовок или цену он не имеет права.

// toDisplayID приводит строковый ID backend (UUID) к числовому виду
// для кода отображения: parseInt(id) || 0.
func toDisplayID(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}

// formatNumber — wire-число в строку отображения ("12.5", "2800000").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// normalizePlotStatus приводит статус участка к закрытому множеству.
// Backend присылает enum в произвольном регистре; все нераспознанное
// схлопывается в "available", чтобы в UI не утек неизвестный статус.
func normalizePlotStatus(raw string) string {
	switch strings.ToLower(raw) {
	case domain.PlotStatusAvailable, domain.PlotStatusSold, domain.PlotStatusReserved:
		return strings.ToLower(raw)
	default:
		return domain.PlotStatusAvailable
	}
}

func normalizeListingStatus(isPublished bool) string {
	if isPublished {
		return domain.ListingStatusPublished
	}
	return domain.ListingStatusHidden
}

// normalizeLandType: все, что не "russia", считается Новороссией.
func normalizeLandType(plotType string) string {
	if strings.ToLower(plotType) == domain.LandTypeRussia {
		return domain.LandTypeRussia
	}
	return domain.LandTypeNovorossia
}

func toDomainLocation(dto locationDTO) domain.Location {
	// Backend хранит только одну строку адреса: region/locality пустые
	return domain.Location{
		ID:          toDisplayID(dto.ID),
		AddressLine: dto.Address,
	}
}

// toDomainMediaFiles адаптирует медиафайлы. onlyVisual отфильтровывает
// все, кроме изображений и видео (детальная карточка).
// Главным (is_main) считается файл с order == 0 — явного флага у
// backend нет.
func toDomainMediaFiles(files []mediaFileDTO, onlyVisual bool) []domain.MediaFile {
	result := make([]domain.MediaFile, 0, len(files))
	for _, mf := range files {
		typeLower := strings.ToLower(mf.Type)
		if onlyVisual && typeLower != domain.MediaTypeImage && typeLower != domain.MediaTypeVideo {
			continue
		}
		result = append(result, domain.MediaFile{
			ID:      toDisplayID(mf.ID),
			URL:     mf.URL,
			FileURL: mf.URL,
			Type:    typeLower,
			Order:   mf.Order,
			IsMain:  mf.Order == 0,
		})
	}
	return result
}

// toDomainDocumentFiles вливает документы в общую коллекцию медиа:
// type "document", order 0, is_main false, имя документа — в description.
func toDomainDocumentFiles(files []documentFileDTO) []domain.MediaFile {
	result := make([]domain.MediaFile, 0, len(files))
	for _, df := range files {
		result = append(result, domain.MediaFile{
			ID:          toDisplayID(df.ID),
			URL:         df.URL,
			FileURL:     df.URL,
			Type:        domain.MediaTypeDocument,
			Description: df.Name,
		})
	}
	return result
}

func toDomainFeatures(features []namedRefDTO) []domain.Feature {
	result := make([]domain.Feature, 0, len(features))
	for _, f := range features {
		// type/type_display backend не отдает
		result = append(result, domain.Feature{
			ID:   toDisplayID(f.ID),
			Name: f.Name,
		})
	}
	return result
}

func toDomainCategory(dto *namedRefDTO) *domain.LandCategory {
	if dto == nil {
		return nil
	}
	return &domain.LandCategory{
		ID:   toDisplayID(dto.ID),
		Name: dto.Name,
	}
}

func toDomainLandUseTypes(permittedUse *namedRefDTO) []domain.LandUseType {
	if permittedUse == nil {
		return []domain.LandUseType{}
	}
	return []domain.LandUseType{{
		ID:   toDisplayID(permittedUse.ID),
		Name: permittedUse.Name,
	}}
}

func validateRequired(dto *landPlotDTO) error {
	if dto.ID == "" {
		return fmt.Errorf("land plot record has no id")
	}
	if dto.Title == "" {
		return fmt.Errorf("land plot %s has no title", dto.ID)
	}
	return nil
}

// toDomainLandPlot собирает карточку участка для списков каталога.
func toDomainLandPlot(dto *landPlotDTO) (domain.LandPlot, error) {
	if err := validateRequired(dto); err != nil {
		return domain.LandPlot{}, err
	}

	var description *string
	if dto.Description != "" {
		d := dto.Description
		description = &d
	}

	return domain.LandPlot{
		ID:            dto.ID,
		Title:         dto.Title,
		Slug:          dto.Slug,
		Description:   description,
		Location:      toDomainLocation(dto.Location),
		Price:         formatNumber(dto.Price),
		ListingStatus: normalizeListingStatus(dto.IsPublished),
		MediaFiles:    toDomainMediaFiles(dto.MediaFiles, false),
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		Area:          formatNumber(dto.Area),
		PricePerAre:   formatNumber(dto.PricePerHundred),
		Features:      toDomainFeatures(dto.Features),
		LandCategory:  toDomainCategory(dto.Category),
		LandUseTypes:  toDomainLandUseTypes(dto.PermittedUse),
		PlotStatus:    normalizePlotStatus(dto.Status),
	}, nil
}

// toDomainLandPlotDetail собирает полную карточку участка.
// Отличия от карточки списка: медиа фильтруются до изображений/видео
// и к ним подклеиваются документы; числовой id для отображения
// дополняется настоящим UUID в OriginalID — его потом требует форма
// заявки по участку.
func toDomainLandPlotDetail(dto *landPlotDTO) (*domain.LandPlotDetail, error) {
	if err := validateRequired(dto); err != nil {
		return nil, err
	}

	mediaFiles := toDomainMediaFiles(dto.MediaFiles, true)
	mediaFiles = append(mediaFiles, toDomainDocumentFiles(dto.DocumentFiles)...)

	plotStatus := normalizePlotStatus(dto.Status)
	listingStatus := normalizeListingStatus(dto.IsPublished)
	landType := normalizeLandType(dto.PlotType)

	cadastral := dto.CadastralNumbers
	if cadastral == nil {
		cadastral = []string{}
	}

	area := formatNumber(dto.Area)
	price := formatNumber(dto.Price)
	pricePerAre := formatNumber(dto.PricePerHundred)

	return &domain.LandPlotDetail{
		ID:                   toDisplayID(dto.ID),
		OriginalID:           dto.ID,
		Title:                dto.Title,
		Slug:                 dto.Slug,
		Description:          dto.Description,
		LandType:             landType,
		LandTypeDisplay:      domain.LandTypeDisplay[landType],
		Location:             toDomainLocation(dto.Location),
		CadastralNumbers:     cadastral,
		LandUseTypes:         toDomainLandUseTypes(dto.PermittedUse),
		LandCategory:         toDomainCategory(dto.Category),
		Features:             toDomainFeatures(dto.Features),
		Area:                 area,
		Price:                price,
		PricePerAre:          pricePerAre,
		PlotStatus:           plotStatus,
		PlotStatusDisplay:    domain.PlotStatusDisplay[plotStatus],
		ListingStatus:        listingStatus,
		ListingStatusDisplay: domain.ListingStatusDisplay[listingStatus],
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
		MediaFiles:           mediaFiles,
		PriceFormatted:       domain.FormatPrice(price),
		PricePerAreFormatted: domain.FormatPricePerAre(pricePerAre),
		AreaFormatted:        domain.FormatArea(area),
	}, nil
}

// toDomainContact адаптирует ответ /v1/contacts в полную форму.
func toDomainContact(dto *contactDTO) *domain.Contact {
	return &domain.Contact{
		ID:            dto.ID,
		Phone:         dto.Phone,
		Whatsapp:      dto.Whatsapp,
		Telegram:      dto.Telegram,
		Email:         nil, // backend не хранит email
		Address:       dto.Address,
		OfficeAddress: dto.Address,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		WorkTimeFrom:  dto.WorkTimeFrom,
		WorkTimeTo:    dto.WorkTimeTo,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		WorkingHours:  domain.GenerateWorkingHours(dto.WorkTimeFrom, dto.WorkTimeTo),
	}
}

// toDomainContactInfo адаптирует тот же ответ в форму страницы контактов.
func toDomainContactInfo(dto *contactDTO) *domain.ContactInfo {
	phone := ""
	if dto.Phone != nil {
		phone = *dto.Phone
	}

	hours := domain.GenerateWorkingHours(dto.WorkTimeFrom, dto.WorkTimeTo)
	for i := range hours {
		hours[i].ID = 0 // в урезанной форме id дней не отдаются
	}

	return &domain.ContactInfo{
		ID:            dto.ID,
		Phone:         phone,
		Whatsapp:      dto.Whatsapp,
		Email:         nil,
		OfficeAddress: dto.Address,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		WorkingHours:  hours,
	}
}

// isEmptyContact: backend может вернуть запись без единого заполненного
// поля — для сайта это равносильно отсутствию контактов.
func isEmptyContact(dto *contactDTO) bool {
	return dto.Phone == nil && dto.Whatsapp == nil && dto.Address == nil && dto.WorkTimeFrom == nil
}

// snakeToCamel переводит snake_case в camelCase: каждое "_x" заменяется
// на заглавную "x". Нужен для имен полей сортировки backend-схемы.
func snakeToCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			b.WriteByte(s[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
