package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laisurjan/hlbhteacher/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestMissingFilesLoadAsZeroDocuments(t *testing.T) {
	s := newTestStore(t)

	courses := s.LoadCourses()
	assert.Zero(t, courses.SchoolYear)
	assert.Empty(t, courses.DaySchool.Departments)
	assert.Empty(t, courses.EveningSchool.Departments)

	teachers := s.LoadTeachers()
	assert.Empty(t, teachers.Domains)

	settings := s.LoadSettings()
	assert.Empty(t, settings.AdminPassword)
}

func TestCorruptFileLoadsAsZeroDocument(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "teachers.json"), []byte("{not json"), 0o644))

	teachers := s.LoadTeachers()
	assert.Empty(t, teachers.Domains)
	assert.Zero(t, teachers.SchoolYear)
}

func TestTeachersRoundTripStampsLastUpdated(t *testing.T) {
	s := newTestStore(t)
	doc := &models.TeachersDoc{
		SchoolYear: 114,
		Domains: []models.Domain{
			{ID: models.DomainMath, Name: "數學", RequiredHours: 72,
				FormalTeachers: []models.FormalTeacher{{Name: "王小明", BaseHours: 16}}},
		},
	}
	require.NoError(t, s.SaveTeachers(doc))
	assert.Equal(t, time.Now().Format("2006-01-02"), doc.LastUpdated)

	got := s.LoadTeachers()
	require.Len(t, got.Domains, 1)
	assert.Equal(t, models.DomainMath, got.Domains[0].ID)
	assert.Equal(t, "數學", got.Domains[0].Name)
	assert.Equal(t, doc.LastUpdated, got.LastUpdated)
}

func TestSavedJSONKeepsCJKLiteral(t *testing.T) {
	s := newTestStore(t)
	doc := &models.CoursesDoc{
		SchoolYear: 114,
		DaySchool: models.SchoolSection{Departments: []models.Department{
			{ID: "data_processing", Name: "資處科", Classes: 2,
				Courses: []models.Course{{Domain: "數學", Name: "數學", Credits: 8}}},
		}},
	}
	require.NoError(t, s.SaveCourses(doc))

	raw, err := os.ReadFile(filepath.Join(s.Dir(), "courses.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "資處科")    // 不轉義成 \uXXXX
	assert.Contains(t, string(raw), "\n  \"") // 兩格縮排
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	in := models.Settings{AdminPassword: "admin123", SiteTitle: "教師員額控管系統", SchoolYear: 114}
	require.NoError(t, s.SaveSettings(in))
	assert.Equal(t, in, s.LoadSettings())
}

func TestSnapshotsSortedAndSkipBroken(t *testing.T) {
	s := newTestStore(t)

	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), name), []byte(body), 0o644))
	}
	write("courses_114.json", `{"school_year":114}`)
	write("courses_112.json", `{"school_year":112}`)
	write("courses_113.json", `{broken`)
	write("courses.json", `{"school_year":115}`) // 現行文件不是快照
	write("notes.txt", "x")

	snaps := s.Snapshots()
	require.Len(t, snaps, 2)
	assert.Equal(t, 112, snaps[0].Year)
	assert.Equal(t, 114, snaps[1].Year)
	assert.Equal(t, 112, snaps[0].Doc.SchoolYear)
}
