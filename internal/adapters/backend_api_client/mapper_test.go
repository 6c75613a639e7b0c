package backend_api_client

import (
	"testing"

	"catalog-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLandPlotDTO() landPlotDTO {
	return landPlotDTO{
		ID:          "b7c9e4a2-1f3d-4e5a-9b8c-7d6e5f4a3b2c",
		Title:       "Участок у реки",
		Slug:        "uchastok-u-reki",
		PlotType:    "russia",
		Description: "Ровный участок с коммуникациями",
		IsPublished: false,
		Status:      "SOLD",
		Location: locationDTO{
			ID:      "42",
			Address: "Алтайский край, с. Ая",
		},
		CadastralNumbers: nil,
		Category:         &namedRefDTO{ID: "3", Name: "ИЖС"},
		PermittedUse:     &namedRefDTO{ID: "5", Name: "Жилая застройка"},
		Area:             12.5,
		Price:            2800000,
		PricePerHundred:  224000,
		Features:         []namedRefDTO{{ID: "1", Name: "Электричество"}},
		MediaFiles: []mediaFileDTO{
			{ID: "10", URL: "https://cdn.example.com/a.jpg", Type: "IMAGE", Order: 0},
			{ID: "11", URL: "https://cdn.example.com/b.mp4", Type: "VIDEO", Order: 1},
			{ID: "12", URL: "https://cdn.example.com/c.pano", Type: "PANORAMA", Order: 2},
		},
		DocumentFiles: []documentFileDTO{
			{ID: "20", URL: "https://cdn.example.com/plan.pdf", Name: "Межевой план"},
		},
		CreatedAt: "2025-05-01T10:00:00Z",
		UpdatedAt: "2025-05-02T10:00:00Z",
	}
}

func TestToDomainLandPlotDetail(t *testing.T) {
	dto := sampleLandPlotDTO()

	detail, err := toDomainLandPlotDetail(&dto)
	require.NoError(t, err)
	require.NotNil(t, detail)

	// UUID не парсится в число: числовой id 0, оригинал сохранен
	assert.Equal(t, 0, detail.ID)
	assert.Equal(t, "b7c9e4a2-1f3d-4e5a-9b8c-7d6e5f4a3b2c", detail.OriginalID)

	assert.Equal(t, "sold", detail.PlotStatus)
	assert.Equal(t, "Продан", detail.PlotStatusDisplay)
	assert.Equal(t, "hidden", detail.ListingStatus)
	assert.Equal(t, "Скрыто", detail.ListingStatusDisplay)
	assert.Equal(t, "russia", detail.LandType)
	assert.Equal(t, "Россия", detail.LandTypeDisplay)

	// Числа backend приведены к строкам
	assert.Equal(t, "12.5", detail.Area)
	assert.Equal(t, "2800000", detail.Price)
	assert.Equal(t, "224000", detail.PricePerAre)

	// nil cadastralNumbers отдается пустым срезом, не null
	require.NotNil(t, detail.CadastralNumbers)
	assert.Empty(t, detail.CadastralNumbers)

	// Панорама отфильтрована, документ влит в общую коллекцию
	require.Len(t, detail.MediaFiles, 3)
	assert.Equal(t, "image", detail.MediaFiles[0].Type)
	assert.True(t, detail.MediaFiles[0].IsMain)
	assert.Equal(t, "video", detail.MediaFiles[1].Type)
	assert.False(t, detail.MediaFiles[1].IsMain)

	doc := detail.MediaFiles[2]
	assert.Equal(t, "document", doc.Type)
	assert.Equal(t, "Межевой план", doc.Description)
	assert.False(t, doc.IsMain)
	assert.Equal(t, 0, doc.Order)
}

func TestToDomainLandPlotSummary(t *testing.T) {
	dto := sampleLandPlotDTO()
	dto.IsPublished = true
	dto.Status = "AVAILABLE"

	plot, err := toDomainLandPlot(&dto)
	require.NoError(t, err)

	// В карточке списка id остается исходной строкой
	assert.Equal(t, dto.ID, plot.ID)
	assert.Equal(t, "available", plot.PlotStatus)
	assert.Equal(t, "published", plot.ListingStatus)
	require.NotNil(t, plot.Description)
	assert.Equal(t, dto.Description, *plot.Description)

	// Список не фильтрует медиа по типу
	assert.Len(t, plot.MediaFiles, 3)
}

func TestToDomainLandPlotEmptyDescription(t *testing.T) {
	dto := sampleLandPlotDTO()
	dto.Description = ""

	plot, err := toDomainLandPlot(&dto)
	require.NoError(t, err)
	assert.Nil(t, plot.Description)
}

func TestToDomainLandPlotMissingRequiredFields(t *testing.T) {
	noID := sampleLandPlotDTO()
	noID.ID = ""
	_, err := toDomainLandPlot(&noID)
	assert.Error(t, err)

	noTitle := sampleLandPlotDTO()
	noTitle.Title = ""
	_, err = toDomainLandPlot(&noTitle)
	assert.Error(t, err)
}

func TestNormalizePlotStatusTotality(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"AVAILABLE", "available"},
		{"available", "available"},
		{"Sold", "sold"},
		{"RESERVED", "reserved"},
		{"", "available"},
		{"UNKNOWN_STATUS", "available"},
		{"42", "available"},
	}
	for _, tt := range tests {
		got := normalizePlotStatus(tt.raw)
		assert.Equal(t, tt.want, got, "status %q", tt.raw)
		assert.Contains(t, domain.PlotStatusDisplay, got)
	}
}

func TestNormalizeLandType(t *testing.T) {
	assert.Equal(t, "russia", normalizeLandType("russia"))
	assert.Equal(t, "russia", normalizeLandType("RUSSIA"))
	assert.Equal(t, "novorossia", normalizeLandType("novorossia"))
	assert.Equal(t, "novorossia", normalizeLandType(""))
	assert.Equal(t, "novorossia", normalizeLandType("anything-else"))
}

func TestToDomainNullableRefs(t *testing.T) {
	dto := sampleLandPlotDTO()
	dto.Category = nil
	dto.PermittedUse = nil

	detail, err := toDomainLandPlotDetail(&dto)
	require.NoError(t, err)

	assert.Nil(t, detail.LandCategory)
	require.NotNil(t, detail.LandUseTypes)
	assert.Empty(t, detail.LandUseTypes)
}

func TestIsMainFollowsOrder(t *testing.T) {
	files := []mediaFileDTO{
		{ID: "1", URL: "u1", Type: "image", Order: 3},
		{ID: "2", URL: "u2", Type: "image", Order: 0},
	}

	adapted := toDomainMediaFiles(files, false)
	require.Len(t, adapted, 2)
	for _, mf := range adapted {
		assert.Equal(t, mf.Order == 0, mf.IsMain)
	}
}

// Одинаковый вход дает одинаковый выход: адаптация чистая.
func TestAdaptationIsDeterministic(t *testing.T) {
	dto1 := sampleLandPlotDTO()
	dto2 := sampleLandPlotDTO()

	d1, err := toDomainLandPlotDetail(&dto1)
	require.NoError(t, err)
	d2, err := toDomainLandPlotDetail(&dto2)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12.5", formatNumber(12.5))
	assert.Equal(t, "2800000", formatNumber(2800000))
	assert.Equal(t, "0", formatNumber(0))
}

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"created_at", "createdAt"},
		{"price_per_hundred", "pricePerHundred"},
		{"price", "price"},
		{"", ""},
		{"_leading", "Leading"},
		{"trailing_", "trailing_"},
		{"double__underscore", "double_Underscore"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, snakeToCamel(tt.in), "input %q", tt.in)
	}
}

func TestContactAdaptation(t *testing.T) {
	phone := "+7 (999) 123-45-67"
	addr := "с. Ая, ул. Центральная 1"
	from := "09:00"
	to := "18:00"

	dto := &contactDTO{
		ID:           "c1",
		Phone:        &phone,
		Address:      &addr,
		WorkTimeFrom: &from,
		WorkTimeTo:   &to,
		CreatedAt:    "2025-01-01T00:00:00Z",
	}

	contact := toDomainContact(dto)
	require.NotNil(t, contact)
	assert.Equal(t, &phone, contact.Phone)
	assert.Equal(t, &addr, contact.OfficeAddress)
	assert.Nil(t, contact.Email)
	require.Len(t, contact.WorkingHours, 7)
	assert.NotZero(t, contact.WorkingHours[0].ID)

	info := toDomainContactInfo(dto)
	require.NotNil(t, info)
	assert.Equal(t, phone, info.Phone)
	require.Len(t, info.WorkingHours, 7)
	// В урезанной форме id дней обнулены
	for _, wh := range info.WorkingHours {
		assert.Zero(t, wh.ID)
	}
}

func TestIsEmptyContact(t *testing.T) {
	assert.True(t, isEmptyContact(&contactDTO{ID: "c1"}))

	phone := "+79991234567"
	assert.False(t, isEmptyContact(&contactDTO{Phone: &phone}))
}
