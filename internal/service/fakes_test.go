package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	"github.com/DiegoMarin025/EduTrack-SW/internal/repository"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
)

type emitted struct {
	recipient string
	title     string
	message   string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []emitted
}

func (f *fakeNotifier) Emit(_ context.Context, recipientID, title, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, emitted{recipient: recipientID, title: title, message: message})
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeNotifier) last() emitted {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

type fakeClassResolver struct {
	subjects map[string]models.ClassSubject
	err      error
}

func (f *fakeClassResolver) FindClassSubject(_ context.Context, classSectionID string) (*models.ClassSubject, error) {
	if f.err != nil {
		return nil, f.err
	}
	subject, ok := f.subjects[classSectionID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &subject, nil
}

type fakeGradeRepo struct {
	mu         sync.Mutex
	records    map[string]models.GradeRecord
	staleFinds int
	creates    int
	updates    int
	createErr  error
	seq        int
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{records: map[string]models.GradeRecord{}}
}

func gradeKey(studentID, subjectID string) string {
	return studentID + "|" + subjectID
}

func (f *fakeGradeRepo) FindByStudentAndSubject(_ context.Context, studentID, subjectID string) (*models.GradeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.staleFinds > 0 {
		f.staleFinds--
		return nil, sql.ErrNoRows
	}
	record, ok := f.records[gradeKey(studentID, subjectID)]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &record, nil
}

func (f *fakeGradeRepo) Create(_ context.Context, record *models.GradeRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	key := gradeKey(record.StudentID, record.SubjectID)
	if _, exists := f.records[key]; exists {
		return repository.ErrDuplicate
	}
	f.seq++
	record.ID = fmt.Sprintf("grade-%d", f.seq)
	f.records[key] = *record
	f.creates++
	return nil
}

func (f *fakeGradeRepo) UpdateGrade(_ context.Context, id string, grade float64, recordedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, record := range f.records {
		if record.ID == id {
			record.Grade = grade
			record.RecordedAt = recordedAt
			f.records[key] = record
			f.updates++
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeGradeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

type fakeUserRepo struct {
	users     map[string]models.User
	created   []models.User
	createErr error
	findErr   error
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if f.users == nil {
		f.users = map[string]models.User{}
	}
	f.users[user.ID] = *user
	f.created = append(f.created, *user)
	return nil
}

type fakeGroupRepo struct {
	groups      map[string]models.Group
	sections    []models.ClassSection
	details     []models.ClassSectionDetail
	students    map[string][]models.StudentSummary
	lastTeacher string
	createErr   error
	sectionErr  error
}

func (f *fakeGroupRepo) Create(_ context.Context, group *models.Group) error {
	if f.createErr != nil {
		return f.createErr
	}
	if group.ID == "" {
		group.ID = "grp-new"
	}
	if f.groups == nil {
		f.groups = map[string]models.Group{}
	}
	f.groups[group.ID] = *group
	return nil
}

func (f *fakeGroupRepo) FindByID(_ context.Context, id string) (*models.Group, error) {
	group, ok := f.groups[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &group, nil
}

func (f *fakeGroupRepo) List(context.Context) ([]models.Group, error) {
	groups := make([]models.Group, 0, len(f.groups))
	for _, group := range f.groups {
		groups = append(groups, group)
	}
	return groups, nil
}

func (f *fakeGroupRepo) CreateClassSection(_ context.Context, section *models.ClassSection) error {
	if f.sectionErr != nil {
		return f.sectionErr
	}
	section.ID = "cls-new"
	f.sections = append(f.sections, *section)
	return nil
}

func (f *fakeGroupRepo) ListClassSections(_ context.Context, teacherID string) ([]models.ClassSectionDetail, error) {
	f.lastTeacher = teacherID
	return f.details, nil
}

func (f *fakeGroupRepo) ListStudentsByClassSection(_ context.Context, classSectionID string) ([]models.StudentSummary, error) {
	return f.students[classSectionID], nil
}

func (f *fakeGroupRepo) ClassSectionExists(_ context.Context, classSectionID string) (bool, error) {
	_, ok := f.students[classSectionID]
	return ok, nil
}

type fakeCacheRepo struct {
	mu      sync.Mutex
	entries map[string][]byte
	deleted []string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{entries: map[string][]byte{}}
}

func (f *fakeCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, pattern)
	f.deleted = append(f.deleted, pattern)
	return nil
}
