package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Sheet — загруженный лист спрайтов и его сетка.
type Sheet struct {
	Name        string
	Image       image.Image
	Atlas       Atlas
	Placeholder bool // файла не было, нарисована заглушка
}

// Manager загружает и кэширует листы спрайтов из каталога ресурсов.
// Его создаёт и очищает тот, кто собирает сцену.
type Manager struct {
	dir     string
	palette PlaceholderPalette
	logger  *log.Logger
	sheets  map[string]*Sheet
}

// NewManager создает новый экземпляр Manager.
func NewManager(dir string, palette PlaceholderPalette, logger *log.Logger) *Manager {
	return &Manager{
		dir:     dir,
		palette: palette,
		logger:  logger,
		sheets:  make(map[string]*Sheet),
	}
}

// LoadSheet читает PNG name из каталога ресурсов. Если файла нет,
// возвращается заглушка; ошибка декодирования или неподходящий размер —
// это ошибка.
func (m *Manager) LoadSheet(name string, atlas Atlas) (*Sheet, error) {
	if sheet, ok := m.sheets[name]; ok {
		return sheet, nil
	}

	path := filepath.Join(m.dir, name)
	sheet := &Sheet{Name: name, Atlas: atlas}

	img, err := decodeFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		m.logger.Warn("sprite sheet not found, using placeholder", "path", path)
		sheet.Image = Placeholder(atlas, m.palette)
		sheet.Placeholder = true
	case err != nil:
		return nil, fmt.Errorf("failed to load sprite sheet %s: %w", path, err)
	default:
		if !atlas.Fits(img.Bounds()) {
			return nil, fmt.Errorf("sprite sheet %s is %v, grid needs %v: %w",
				path, img.Bounds().Size(), atlas.Size(), ErrBadGrid)
		}
		sheet.Image = img
		m.logger.Info("loaded sprite sheet", "path", path, "frames", atlas.Len())
	}

	m.sheets[name] = sheet
	return sheet, nil
}

// Cleanup забывает все загруженные листы.
func (m *Manager) Cleanup() {
	for name := range m.sheets {
		delete(m.sheets, name)
	}
	m.logger.Debug("all sprite sheets unloaded")
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}
