package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"interiorquote/internal/domain/entities"
	mock_interfaces "interiorquote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("missing owner", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Project{Title: "x"})
		if !errors.Is(err, ErrInvalidProjectInput) {
			t.Fatalf("expected ErrInvalidProjectInput, got %v", err)
		}
	})

	t.Run("inverted budget", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Project{OwnerID: "u", Title: "x", Budget: entities.BudgetRange{Min: 10, Max: 5}})
		if !errors.Is(err, ErrInvalidProjectInput) {
			t.Fatalf("expected ErrInvalidProjectInput, got %v", err)
		}
	})

	t.Run("defaults to submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" || p.CreatedAt.IsZero() || p.Status != entities.ProjectStatusSubmitted || p.Title != "Loft" {
					t.Fatalf("unexpected project: %+v", p)
				}
				return p, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.Project{OwnerID: " u-1 ", Title: " Loft ", Status: entities.ProjectStatusQuoted, PreviewImageURL: "x"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("keeps draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		p, err := uc.Create(context.Background(), entities.Project{OwnerID: "u-1", Title: "Loft", Status: entities.ProjectStatusDraft})
		if err != nil || p.Status != entities.ProjectStatusDraft {
			t.Fatalf("expected draft, got %+v err=%v", p, err)
		}
	})
}

func TestProjectUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIProjectRepository(ctrl)
	uc := NewProjectUseCase(repo, nil)

	stored := sampleProject()
	stored.OwnerID = "u-1"
	stored.PreviewImageURL = "https://img/1.png"
	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
	)

	in := entities.Project{ID: "p-1", OwnerID: "intruder", Title: "Bigger Loft", AreaSqft: 350, Status: entities.ProjectStatusCompleted}
	out, err := uc.Update(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Title != "Bigger Loft" || out.AreaSqft != 350 {
		t.Fatalf("edits not applied: %+v", out)
	}
	if out.OwnerID != "u-1" || out.Status != stored.Status || out.PreviewImageURL != stored.PreviewImageURL {
		t.Fatalf("protected fields changed: %+v", out)
	}
}

func TestProjectUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "p-1", "archived")
		if !errors.Is(err, ErrInvalidProjectStatus) {
			t.Fatalf("expected ErrInvalidProjectStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p-9", entities.ProjectStatusCompleted).Return(entities.Project{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "p-9", entities.ProjectStatusCompleted)
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectUseCase_GeneratePreview(t *testing.T) {
	t.Run("stores url and moves to under_review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		images := mock_interfaces.NewMockIImageGenerator(ctrl)
		uc := NewProjectUseCase(repo, images)

		p := sampleProject()
		p.Status = entities.ProjectStatusSubmitted
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		images.EXPECT().GeneratePreviewImage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, "Modern style") || !strings.Contains(prompt, "Living Room") {
					t.Fatalf("unexpected prompt: %s", prompt)
				}
				return "https://img/preview.png", nil
			},
		)
		repo.EXPECT().UpdatePreview(gomock.Any(), "p-1", "https://img/preview.png", entities.ProjectStatusUnderReview).
			Return(entities.Project{ID: "p-1", PreviewImageURL: "https://img/preview.png", Status: entities.ProjectStatusUnderReview}, nil)

		out, err := uc.GeneratePreview(context.Background(), "p-1")
		if err != nil || out.Status != entities.ProjectStatusUnderReview {
			t.Fatalf("unexpected result %+v err=%v", out, err)
		}
	})

	t.Run("image failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		images := mock_interfaces.NewMockIImageGenerator(ctrl)
		uc := NewProjectUseCase(repo, images)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(sampleProject(), nil)
		images.EXPECT().GeneratePreviewImage(gomock.Any(), gomock.Any()).Return("", errors.New("quota"))

		_, err := uc.GeneratePreview(context.Background(), "p-1")
		var genErr *GenerationError
		if !errors.As(err, &genErr) || genErr.Op != "image" {
			t.Fatalf("expected GenerationError, got %v", err)
		}
	})
}

func TestPreviewPrompt(t *testing.T) {
	p := entities.Project{
		SpaceType: "Bedroom",
		AreaSqft:  120,
		Style:     entities.StylePreferences{Name: "Scandinavian", Colors: []string{"white", "oak"}},
		Materials: entities.MaterialPreferences{Flooring: "oak planks"},
	}
	got := PreviewPrompt(p)
	want := "Photorealistic interior design render of a Bedroom in Scandinavian style, color palette white, oak, flooring: oak planks, about 120 sqft."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
