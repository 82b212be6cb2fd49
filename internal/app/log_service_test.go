package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/example/permlog/internal/ports/primary"
)

type recordReq struct {
	typ, target, name, action string
}

func (r recordReq) toRequest() primary.RecordActionRequest {
	return primary.RecordActionRequest{Type: r.typ, Target: r.target, Name: r.name, Action: r.action}
}

func newTestLogService() (*LogServiceImpl, *mockLogWriter) {
	writer := &mockLogWriter{}
	service := NewLogService(writer, newMockActionLogRepository())
	return service, writer
}

func TestLogService_RecordAction(t *testing.T) {
	tests := []struct {
		name    string
		req     recordReq
		wantErr bool
		want    loggedAction
	}{
		{
			name: "user action",
			req:  recordReq{"U", notchID.String(), "Notch", "permission set fly true"},
			want: loggedAction{kind: "U", userID: notchID, name: "Notch", action: "permission set fly true"},
		},
		{
			name: "lower-case type and undashed uuid",
			req:  recordReq{"u", "069a79f444e94726a5befca90e38aaf5", "", "parent add vip"},
			want: loggedAction{kind: "U", userID: notchID, action: "parent add vip"},
		},
		{
			name: "group action",
			req:  recordReq{"G", "admin", "", "meta set prefix [A]"},
			want: loggedAction{kind: "G", name: "admin", action: "meta set prefix [A]"},
		},
		{
			name: "track action",
			req:  recordReq{"T", "staff", "", "append mod"},
			want: loggedAction{kind: "T", name: "staff", action: "append mod"},
		},
		{
			name:    "user target must be a uuid",
			req:     recordReq{"U", "Notch", "", "parent add vip"},
			wantErr: true,
		},
		{
			name:    "unknown type",
			req:     recordReq{"X", "admin", "", "anything"},
			wantErr: true,
		},
		{
			name:    "empty action",
			req:     recordReq{"G", "admin", "", "   "},
			wantErr: true,
		},
		{
			name:    "empty group",
			req:     recordReq{"G", " ", "", "meta clear"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, writer := newTestLogService()

			err := service.RecordAction(context.Background(), tt.req.toRequest())

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if len(writer.logged) != 0 {
					t.Errorf("expected nothing logged, got %+v", writer.logged)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(writer.logged) != 1 {
				t.Fatalf("expected 1 logged action, got %d", len(writer.logged))
			}
			if writer.logged[0] != tt.want {
				t.Errorf("logged %+v, want %+v", writer.logged[0], tt.want)
			}
		})
	}
}

func TestLogService_RecordAction_WriterError(t *testing.T) {
	service, writer := newTestLogService()
	writer.err = errors.New("disk full")

	err := service.RecordAction(context.Background(), recordReq{"G", "admin", "", "meta clear"}.toRequest())
	if !errors.Is(err, writer.err) {
		t.Errorf("expected writer error, got %v", err)
	}
}

func TestLogService_PruneLogs_RejectsNonPositiveDays(t *testing.T) {
	service, _ := newTestLogService()

	if _, err := service.PruneLogs(context.Background(), 0); err == nil {
		t.Error("expected error for zero days")
	}
	if _, err := service.PruneLogs(context.Background(), 30); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestPlayerService_SavePlayer(t *testing.T) {
	players := &mockPlayerRepository{}
	players.On("SaveUsername", mock.Anything, notchID, "notch").Return(nil)
	service := NewPlayerService(players)

	if err := service.SavePlayer(context.Background(), notchID, "Notch"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	players.AssertExpectations(t)

	if err := service.SavePlayer(context.Background(), uuid.Nil, "Notch"); err == nil {
		t.Error("expected error for nil uuid")
	}
	if err := service.SavePlayer(context.Background(), notchID, "bad\nname"); err == nil {
		t.Error("expected error for invalid username")
	}
	players.AssertNumberOfCalls(t, "SaveUsername", 1)
}
