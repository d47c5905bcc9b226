package usecase

import (
	"context"
	"errors"
	"testing"

	mock_interfaces "engagetrack/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestActionItemUseCase_ListByEngagement(t *testing.T) {
	t.Run("engagement id required", func(t *testing.T) {
		uc := NewActionItemUseCase(nil, nil, nil)
		if _, err := uc.ListByEngagement(context.Background(), "  "); !errors.Is(err, ErrActionItemEngagementRequired) {
			t.Fatalf("expected ErrActionItemEngagementRequired, got %v", err)
		}
	})

	t.Run("filters by resolved engagement reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIActionItemRepository(ctrl)
		uc := NewActionItemUseCase(items, nil, nil)

		items.EXPECT().List(gomock.Any()).Return([]map[string]any{
			{"id": "a-1", "engagementId": "e-1", "description": "send renewal draft"},
			{"_id": map[string]any{"$oid": "a-2"}, "engagementId": map[string]any{"$oid": "e-1"}, "description": "schedule QBR"},
			{"id": "a-3", "engagementId": "e-2", "description": "other engagement"},
		}, nil)

		got, err := uc.ListByEngagement(context.Background(), "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "a-1" || got[1].ID != "a-2" {
			t.Fatalf("expected items a-1 and a-2, got %+v", got)
		}
		if got[0].Status != "open" {
			t.Fatalf("expected missing status to default to open, got %q", got[0].Status)
		}
	})
}

func TestActionItemUseCase_Create(t *testing.T) {
	t.Run("unknown engagement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewActionItemUseCase(nil, engagements, nil)

		engagements.EXPECT().GetByID(gomock.Any(), "e-404").Return(nil, nil)

		_, err := uc.Create(context.Background(), "e-404", map[string]any{"description": "x"})
		if !errors.Is(err, ErrEngagementNotFound) {
			t.Fatalf("expected ErrEngagementNotFound, got %v", err)
		}
	})

	t.Run("description required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewActionItemUseCase(nil, engagements, nil)

		engagements.EXPECT().GetByID(gomock.Any(), "e-1").Return(map[string]any{"id": "e-1"}, nil)

		_, err := uc.Create(context.Background(), "e-1", map[string]any{"description": "   "})
		if !errors.Is(err, ErrActionItemDescriptionRequired) {
			t.Fatalf("expected ErrActionItemDescriptionRequired, got %v", err)
		}
	})

	t.Run("stamps engagement, status and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIActionItemRepository(ctrl)
		engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewActionItemUseCase(items, engagements, nil)

		engagements.EXPECT().GetByID(gomock.Any(), "e-1").Return(map[string]any{"id": "e-1"}, nil)
		items.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, id string, payload map[string]any) (map[string]any, error) {
				if id == "" {
					t.Fatal("expected generated id")
				}
				if payload["engagementId"] != "e-1" || payload["status"] != "open" {
					t.Fatalf("unexpected payload: %+v", payload)
				}
				if payload["createdAt"] == nil || payload["updatedAt"] == nil {
					t.Fatalf("expected timestamps, got %+v", payload)
				}
				out := map[string]any{"id": id}
				for k, v := range payload {
					out[k] = v
				}
				return out, nil
			},
		)

		item, err := uc.Create(context.Background(), "e-1", map[string]any{"description": "send renewal draft", "owner": ""})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.EngagementID != "e-1" || item.Status != "open" || item.Owner != "" {
			t.Fatalf("unexpected item: %+v", item)
		}
	})
}

func TestActionItemUseCase_CreateExternal(t *testing.T) {
	t.Run("engagement reference required", func(t *testing.T) {
		uc := NewActionItemUseCase(nil, nil, nil)
		_, err := uc.CreateExternal(context.Background(), map[string]any{"description": "x"})
		if !errors.Is(err, ErrActionItemEngagementRequired) {
			t.Fatalf("expected ErrActionItemEngagementRequired, got %v", err)
		}
	})

	t.Run("stamps the external source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIActionItemRepository(ctrl)
		uc := NewActionItemUseCase(items, nil, nil)

		items.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, id string, payload map[string]any) (map[string]any, error) {
				if payload["source"] != "external_system" {
					t.Fatalf("expected external source marker, got %+v", payload)
				}
				out := map[string]any{"id": id}
				for k, v := range payload {
					out[k] = v
				}
				return out, nil
			},
		)

		item, err := uc.CreateExternal(context.Background(), map[string]any{
			"engagementId": "e-1",
			"description":  "ticket escalated",
			"source":       "jira",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Source != "external_system" {
			t.Fatalf("expected external_system source, got %q", item.Source)
		}
	})
}

func TestActionItemUseCase_Update(t *testing.T) {
	t.Run("strips identifier fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIActionItemRepository(ctrl)
		uc := NewActionItemUseCase(items, nil, nil)

		items.EXPECT().Update(gomock.Any(), "a-1", gomock.Any()).DoAndReturn(
			func(_ any, id string, payload map[string]any) (map[string]any, error) {
				if _, ok := payload["id"]; ok {
					t.Fatalf("id must not appear in update payload: %+v", payload)
				}
				if _, ok := payload["_id"]; ok {
					t.Fatalf("_id must not appear in update payload: %+v", payload)
				}
				out := map[string]any{"id": id}
				for k, v := range payload {
					out[k] = v
				}
				return out, nil
			},
		)

		item, err := uc.Update(context.Background(), "a-1", map[string]any{
			"id":          "spoofed",
			"_id":         "spoofed",
			"description": "done",
			"status":      "closed",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != "a-1" || item.Status != "closed" {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIActionItemRepository(ctrl)
		uc := NewActionItemUseCase(items, nil, nil)

		items.EXPECT().Update(gomock.Any(), "a-404", gomock.Any()).Return(nil, nil)

		if _, err := uc.Update(context.Background(), "a-404", map[string]any{"status": "closed"}); !errors.Is(err, ErrActionItemNotFound) {
			t.Fatalf("expected ErrActionItemNotFound, got %v", err)
		}
	})
}

func TestActionItemUseCase_Delete(t *testing.T) {
	t.Run("missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIActionItemRepository(ctrl)
		uc := NewActionItemUseCase(items, nil, nil)

		items.EXPECT().Delete(gomock.Any(), "a-404").Return(false, nil)

		if err := uc.Delete(context.Background(), "a-404"); !errors.Is(err, ErrActionItemNotFound) {
			t.Fatalf("expected ErrActionItemNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIActionItemRepository(ctrl)
		uc := NewActionItemUseCase(items, nil, nil)

		items.EXPECT().Delete(gomock.Any(), "a-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "a-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
