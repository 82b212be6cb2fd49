package app

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/example/permlog/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.ActionLogRepository = (*mockActionLogRepository)(nil)
	_ secondary.PlayerRepository    = (*mockPlayerRepository)(nil)
	_ secondary.ProfileLookup       = (*mockProfileLookup)(nil)
	_ secondary.LogWriter           = (*mockLogWriter)(nil)
)

// mockActionLogRepository is an in-memory secondary.ActionLogRepository.
type mockActionLogRepository struct {
	records   []*secondary.ActionLogRecord
	nextID    int64
	countErr  error
	pageErr   error
	emptyPage bool // UserHistoryPage returns nothing, simulating a broken store

	countCalls int
	pageCalls  int
	lastPage   int
}

func newMockActionLogRepository() *mockActionLogRepository {
	return &mockActionLogRepository{nextID: 1}
}

func (m *mockActionLogRepository) Create(ctx context.Context, record *secondary.ActionLogRecord) error {
	record.ID = m.nextID
	m.nextID++
	m.records = append(m.records, record)
	return nil
}

func (m *mockActionLogRepository) history(target uuid.UUID) []*secondary.ActionLogRecord {
	var out []*secondary.ActionLogRecord
	for _, r := range m.records {
		if r.Type == "U" && r.ActedID != nil && *r.ActedID == target {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *mockActionLogRepository) CountUserHistory(ctx context.Context, target uuid.UUID) (int, error) {
	m.countCalls++
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.history(target)), nil
}

func (m *mockActionLogRepository) UserHistoryPage(ctx context.Context, target uuid.UUID, page, pageSize int) ([]*secondary.ActionLogRecord, error) {
	m.pageCalls++
	m.lastPage = page
	if m.pageErr != nil {
		return nil, m.pageErr
	}
	if m.emptyPage {
		return nil, nil
	}

	all := m.history(target)
	start := (page - 1) * pageSize
	if start < 0 || start >= len(all) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}

	out := make([]*secondary.ActionLogRecord, 0, end-start)
	for i := start; i < end; i++ {
		r := *all[i]
		r.Index = i + 1
		out = append(out, &r)
	}
	return out, nil
}

func (m *mockActionLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	return 0, nil
}

// seedUserHistory adds n user entries for target, one minute apart, the last at end.
func (m *mockActionLogRepository) seedUserHistory(target uuid.UUID, name string, n int, end int64) {
	for i := 0; i < n; i++ {
		id := target
		_ = m.Create(context.Background(), &secondary.ActionLogRecord{
			Timestamp: end - int64(n-1-i)*60,
			ActorID:   uuid.Nil,
			ActorName: "Console",
			Type:      "U",
			ActedID:   &id,
			ActedName: name,
			Action:    "permission set node." + string(rune('a'+i%26)),
		})
	}
}

// mockPlayerRepository is a testify mock of secondary.PlayerRepository.
type mockPlayerRepository struct {
	mock.Mock
}

func (m *mockPlayerRepository) LookupUUID(ctx context.Context, username string) (uuid.UUID, bool, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(uuid.UUID), args.Bool(1), args.Error(2)
}

func (m *mockPlayerRepository) SaveUsername(ctx context.Context, id uuid.UUID, username string) error {
	args := m.Called(ctx, id, username)
	return args.Error(0)
}

// mockProfileLookup is a testify mock of secondary.ProfileLookup.
type mockProfileLookup struct {
	mock.Mock
}

func (m *mockProfileLookup) LookupUUID(ctx context.Context, name string) (uuid.UUID, bool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(uuid.UUID), args.Bool(1), args.Error(2)
}

type loggedAction struct {
	kind   string
	userID uuid.UUID
	name   string
	action string
}

// mockLogWriter records the actions it is asked to log.
type mockLogWriter struct {
	logged []loggedAction
	err    error
}

func (m *mockLogWriter) LogUserAction(ctx context.Context, userID uuid.UUID, username, action string) error {
	m.logged = append(m.logged, loggedAction{kind: "U", userID: userID, name: username, action: action})
	return m.err
}

func (m *mockLogWriter) LogGroupAction(ctx context.Context, group, action string) error {
	m.logged = append(m.logged, loggedAction{kind: "G", name: group, action: action})
	return m.err
}

func (m *mockLogWriter) LogTrackAction(ctx context.Context, track, action string) error {
	m.logged = append(m.logged, loggedAction{kind: "T", name: track, action: action})
	return m.err
}
