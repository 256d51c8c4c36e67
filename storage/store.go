package storage

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/Laisurjan/hlbhteacher/models"
)

// 三份 JSON 文件（整份讀、整份寫）
const (
	coursesFile  = "courses.json"
	teachersFile = "teachers.json"
	settingsFile = "settings.json"
)

var snapshotRe = regexp.MustCompile(`^courses_(\d{2,4})\.json$`)

// Store 以資料夾為邊界的 JSON 文件儲存。
// mu 只序列化本行程內的寫入；跨行程仍是 last-write-wins（已知限制）。
type Store struct {
	dir string
	mu  sync.RWMutex
}

// Data is the process-wide store handle, set once by Open.
var Data *Store

// Open prepares the data directory and sets the global handle.
func Open(dir string) {
	s, err := NewStore(dir)
	if err != nil {
		log.Fatalf("failed to open data dir %s: %v", dir, err)
	}
	Data = s
}

// NewStore creates a store rooted at dir, creating it when absent.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string { return s.dir }

// loadJSON 讀檔失敗或格式錯誤時維持零值，不往外丟錯
func (s *Store) loadJSON(name string, v any) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return
	}
	if err := json.Unmarshal(b, v); err != nil {
		log.Printf("[storage] %s 格式錯誤，以空文件代替: %v", name, err)
	}
}

// saveJSON 整份重寫；縮排兩格、中文不轉義，檔案方便直接閱讀
func (s *Store) saveJSON(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), buf.Bytes(), 0o644)
}

// LoadCourses returns the whole courses document; a zero document when the
// file is missing or unreadable.
func (s *Store) LoadCourses() *models.CoursesDoc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var doc models.CoursesDoc
	s.loadJSON(coursesFile, &doc)
	return &doc
}

// SaveCourses rewrites the whole courses document, stamping last_updated.
func (s *Store) SaveCourses(doc *models.CoursesDoc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.LastUpdated = today()
	return s.saveJSON(coursesFile, doc)
}

// LoadTeachers returns the whole teachers document.
func (s *Store) LoadTeachers() *models.TeachersDoc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var doc models.TeachersDoc
	s.loadJSON(teachersFile, &doc)
	return &doc
}

// SaveTeachers rewrites the whole teachers document, stamping last_updated.
func (s *Store) SaveTeachers(doc *models.TeachersDoc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.LastUpdated = today()
	return s.saveJSON(teachersFile, doc)
}

// LoadSettings returns the settings document.
func (s *Store) LoadSettings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st models.Settings
	s.loadJSON(settingsFile, &st)
	return st
}

// SaveSettings rewrites the settings document.
func (s *Store) SaveSettings(st models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveJSON(settingsFile, st)
}

// Snapshot 歷年課程快照（courses_<學年度>.json，供年度比較頁使用）
type Snapshot struct {
	Year int
	Doc  *models.CoursesDoc
}

// Snapshots lists archived courses_<year>.json files in ascending year
// order. Unreadable snapshots are skipped.
func (s *Store) Snapshots() []Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}
	var out []Snapshot
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := snapshotRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		b, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var doc models.CoursesDoc
		if err := json.Unmarshal(b, &doc); err != nil {
			log.Printf("[storage] 快照 %s 格式錯誤，略過: %v", e.Name(), err)
			continue
		}
		out = append(out, Snapshot{Year: year, Doc: &doc})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func today() string {
	return time.Now().Format("2006-01-02")
}
