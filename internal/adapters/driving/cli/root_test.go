package cli

import (
	"context"
	"time"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

// --- Shared mocks for command tests ---

type mockRenameService struct {
	validateErr error
	report      *domain.RenameReport
	runErr      error
	layers      []domain.Layer
	listErr     error
	lastReq     driving.RenameRequest
}

func (m *mockRenameService) Validate(req driving.RenameRequest) error {
	m.lastReq = req
	return m.validateErr
}

func (m *mockRenameService) Preview(_ context.Context, req driving.RenameRequest) (*domain.RenameReport, error) {
	m.lastReq = req
	return m.report, m.runErr
}

func (m *mockRenameService) Run(_ context.Context, req driving.RenameRequest) (*domain.RenameReport, error) {
	m.lastReq = req
	if m.runErr != nil {
		return nil, m.runErr
	}
	return m.report, nil
}

func (m *mockRenameService) ListLayers(_ context.Context, req driving.RenameRequest) ([]domain.Layer, error) {
	m.lastReq = req
	return m.layers, m.listErr
}

type mockBackendRegistry struct {
	types []domain.BackendType
}

func (m *mockBackendRegistry) List() []domain.BackendType { return m.types }

func (m *mockBackendRegistry) Get(id string) (*domain.BackendType, error) {
	for i := range m.types {
		if m.types[i].ID == id {
			return &m.types[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockBackendRegistry) ValidateJob(_ domain.RenameJob) error { return nil }

func (m *mockBackendRegistry) Available(_ context.Context, id string) error {
	for i := range m.types {
		if m.types[i].ID == id {
			if m.types[i].WindowsOnly {
				return domain.ErrBackendUnavailable
			}
			return nil
		}
	}
	return domain.ErrUnsupportedType
}

type mockSettingsService struct {
	settings driving.AppSettings
	saved    *driving.AppSettings
	path     string
}

func (m *mockSettingsService) Get() (*driving.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *driving.AppSettings) error {
	m.saved = settings
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) SetDefaultBackend(id string) error {
	if id != domain.BackendDXF && id != domain.BackendCOM &&
		id != domain.BackendAutoCAD && id != domain.BackendSendKeys {
		return domain.ErrNotFound
	}
	m.settings.DefaultBackend = id
	return nil
}

func (m *mockSettingsService) GetDefaults() driving.AppSettings {
	return driving.DefaultAppSettings()
}

func (m *mockSettingsService) ConfigPath() string { return m.path }

type mockHistoryService struct {
	records  []domain.JobRecord
	listErr  error
	cleared  bool
	clearErr error
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.JobRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if limit > 0 && len(m.records) > limit {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.JobRecord, error) {
	for i := range m.records {
		if m.records[i].Job.ID == id {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	m.records = nil
	return nil
}

type mockHelpService struct {
	path    string
	openErr error
	opened  bool
}

func (m *mockHelpService) Open() (string, error) {
	if m.openErr != nil {
		return "", m.openErr
	}
	m.opened = true
	return m.path, nil
}

func (m *mockHelpService) Path() (string, error) { return m.path, nil }

func testBackendTypes() []domain.BackendType {
	return []domain.BackendType{
		{
			ID: domain.BackendDXF, Name: "DXF File",
			Description: "Rewrite the drawing exchange file directly",
			Formats:     []domain.FileFormat{domain.FormatDXF},
			NeedsFiles:  true,
		},
		{
			ID: domain.BackendCOM, Name: "AutoCAD COM",
			Description: "Open the drawing in AutoCAD over COM",
			Formats:     []domain.FileFormat{domain.FormatDWG},
			NeedsFiles:  true, WindowsOnly: true,
		},
	}
}

func testReport() *domain.RenameReport {
	return &domain.RenameReport{
		Renamed: []domain.LayerRename{
			{Old: "Walls", New: "P-Walls"},
			{Old: "Doors", New: "P-Doors"},
		},
		Skipped:  []string{"0"},
		Duration: 5 * time.Millisecond,
	}
}

// setupTestServices installs mocks and returns a cleanup func restoring
// the previous services.
func setupTestServices() func() {
	prevRename := renameService
	prevRegistry := backendRegistry
	prevSettings := settingsService
	prevHistory := historyService
	prevHelp := helpService

	renameService = &mockRenameService{
		report: testReport(),
		layers: []domain.Layer{{Name: "0"}, {Name: "Walls"}, {Name: "Doors"}},
	}
	backendRegistry = &mockBackendRegistry{types: testBackendTypes()}
	settingsService = &mockSettingsService{
		settings: driving.DefaultAppSettings(),
		path:     "/tmp/prelayn/config.toml",
	}
	historyService = &mockHistoryService{}
	helpService = &mockHelpService{path: "/tmp/prelayn/help.html"}

	return func() {
		renameService = prevRename
		backendRegistry = prevRegistry
		settingsService = prevSettings
		historyService = prevHistory
		helpService = prevHelp
	}
}
