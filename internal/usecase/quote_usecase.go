package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"path"
	"strings"
	"time"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"
	"interiorquote/pkg"

	"github.com/google/uuid"
)

// FinalizeOutcome tells callers whether the client was actually notified.
type FinalizeOutcome string

const (
	FinalizeOutcomeSent                    FinalizeOutcome = "sent"
	FinalizeOutcomeSentWithoutNotification FinalizeOutcome = "sent_without_notification"
	FinalizeOutcomeNotificationFailed      FinalizeOutcome = "notification_failed"
)

type FinalizeResult struct {
	Quote   entities.Quote  `json:"quote"`
	Outcome FinalizeOutcome `json:"outcome"`
}

// IQuoteUseCase exposes the quote lifecycle.
//
// Flow:
//   - Generate: project -> BOQ -> priced draft (created or overwritten in place)
//   - UpdateItems: admin edit, recompute totals, bump version
//   - Preview: render a fresh PDF and attach its reference
//   - Finalize: render, mark sent, notify the client (best-effort)
//   - SetDecision: sent -> approved | rejected

type IQuoteUseCase interface {
	Generate(ctx context.Context, projectID string) (entities.Quote, error)
	UpdateItems(ctx context.Context, quoteID string, items []entities.QuoteItem, expectedVersion int) (entities.Quote, error)
	Preview(ctx context.Context, quoteID string) (entities.Quote, error)
	Finalize(ctx context.Context, quoteID string) (FinalizeResult, error)
	SetDecision(ctx context.Context, quoteID string, status entities.QuoteStatus) (entities.Quote, error)
	ExportExcel(ctx context.Context, quoteID string) ([]byte, string, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Quote, error)
}

// QuoteUseCaseDeps groups the collaborators of QuoteUseCase. Notifier and
// ExcelRenderer may be nil.
type QuoteUseCaseDeps struct {
	Quotes        interfaces.IQuoteRepository
	Projects      interfaces.IProjectRepository
	CostConfigs   interfaces.ICostConfigRepository
	BOQ           interfaces.IBOQGenerator
	PDFRenderer   interfaces.IQuoteRenderer
	ExcelRenderer interfaces.IQuoteRenderer
	Artifacts     interfaces.IArtifactStore
	Notifier      interfaces.INotifier
	Issuer        entities.Issuer
	Validity      time.Duration
}

type QuoteUseCase struct {
	deps QuoteUseCaseDeps
	now  func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(deps QuoteUseCaseDeps) *QuoteUseCase {
	if deps.Validity <= 0 {
		deps.Validity = entities.DefaultQuoteValidity
	}
	return &QuoteUseCase{deps: deps, now: func() time.Time { return time.Now().UTC() }}
}

func (u *QuoteUseCase) Generate(ctx context.Context, projectID string) (entities.Quote, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Quote{}, ErrInvalidProjectID
	}

	project, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.Quote{}, err
	}

	log.Printf("[quote][usecase] generate start project_id=%s area=%.2f", projectID, project.AreaSqft)
	boq, err := u.deps.BOQ.GenerateBOQ(ctx, boqRequestFor(project))
	if err != nil {
		log.Printf("[quote][usecase] generate boq failed project_id=%s err=%v", projectID, err)
		return entities.Quote{}, &GenerationError{Op: "boq", Err: err}
	}

	entries, err := u.deps.CostConfigs.ListActive(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	items, total := PriceItems(boq.Items, NewCatalog(entries))

	existing, err := u.deps.Quotes.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	var saved entities.Quote
	if existing.ID != "" {
		existing.Items = items
		existing.TotalAmount = total
		existing.Version++
		existing.Status = entities.QuoteStatusDraft
		existing.ValidUntil = now.Add(u.deps.Validity)
		existing.Rationale = boq.Rationale
		existing.UpdatedAt = now

		saved, err = u.deps.Quotes.Update(ctx, existing, 0)
		if err != nil {
			return entities.Quote{}, err
		}
		if saved.ID == "" {
			return entities.Quote{}, ErrQuoteNotFound
		}
	} else {
		saved, err = u.deps.Quotes.Create(ctx, entities.Quote{
			ID:          uuid.NewString(),
			ProjectID:   projectID,
			Items:       items,
			TotalAmount: total,
			Version:     1,
			Status:      entities.QuoteStatusDraft,
			ValidUntil:  now.Add(u.deps.Validity),
			Rationale:   boq.Rationale,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return entities.Quote{}, err
		}
	}

	if _, err := u.deps.Projects.UpdateStatus(ctx, projectID, entities.ProjectStatusQuoted); err != nil {
		return entities.Quote{}, err
	}

	log.Printf("[quote][usecase] generate done quote_id=%s version=%d items=%d total=%.2f", saved.ID, saved.Version, len(saved.Items), saved.TotalAmount)
	return saved, nil
}

func (u *QuoteUseCase) UpdateItems(ctx context.Context, quoteID string, items []entities.QuoteItem, expectedVersion int) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if err := validateQuoteItems(items); err != nil {
		return entities.Quote{}, err
	}
	if expectedVersion < 0 {
		return entities.Quote{}, ErrQuoteVersionConflict
	}

	current, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if expectedVersion > 0 && current.Version != expectedVersion {
		return entities.Quote{}, ErrQuoteVersionConflict
	}

	recomputed, total := RecomputeItems(items)
	current.Items = recomputed
	current.TotalAmount = total
	current.Version++
	current.UpdatedAt = u.now()

	updated, err := u.deps.Quotes.Update(ctx, current, expectedVersion)
	if errors.Is(err, interfaces.ErrVersionMismatch) {
		return entities.Quote{}, ErrQuoteVersionConflict
	}
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] items updated quote_id=%s version=%d total=%.2f", updated.ID, updated.Version, updated.TotalAmount)
	return updated, nil
}

func (u *QuoteUseCase) Preview(ctx context.Context, quoteID string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	project, err := u.loadProject(ctx, q.ProjectID)
	if err != nil {
		return entities.Quote{}, err
	}

	artifact, _, err := u.renderPDF(ctx, q, project)
	if err != nil {
		return entities.Quote{}, err
	}

	updated, err := u.deps.Quotes.UpdateDocument(ctx, q.ID, artifact.URL)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] preview rendered quote_id=%s object=%s", q.ID, artifact.ObjectName)
	return updated, nil
}

// Finalize never fails because of the notification step. When the project has
// no client email the quote is still marked sent and the outcome says so.
func (u *QuoteUseCase) Finalize(ctx context.Context, quoteID string) (FinalizeResult, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return FinalizeResult{}, err
	}
	if q.Status != entities.QuoteStatusDraft && q.Status != entities.QuoteStatusSent {
		return FinalizeResult{}, ErrInvalidTransition
	}
	project, err := u.loadProject(ctx, q.ProjectID)
	if err != nil {
		return FinalizeResult{}, err
	}

	log.Printf("[quote][usecase] finalize start quote_id=%s version=%d", q.ID, q.Version)
	artifact, pdf, err := u.renderPDF(ctx, q, project)
	if err != nil {
		return FinalizeResult{}, err
	}

	if _, err := u.deps.Quotes.UpdateDocument(ctx, q.ID, artifact.URL); err != nil {
		return FinalizeResult{}, err
	}
	sent, err := u.deps.Quotes.UpdateStatus(ctx, q.ID, entities.QuoteStatusSent)
	if err != nil {
		return FinalizeResult{}, err
	}
	if sent.ID == "" {
		return FinalizeResult{}, ErrQuoteNotFound
	}

	res := FinalizeResult{Quote: sent, Outcome: FinalizeOutcomeSent}
	to := strings.TrimSpace(project.Client.Email)
	switch {
	case to == "":
		log.Printf("[quote][usecase] finalize quote_id=%s project_id=%s has no client email, sent without notification", q.ID, project.ID)
		res.Outcome = FinalizeOutcomeSentWithoutNotification
	case u.deps.Notifier == nil:
		log.Printf("[quote][usecase] finalize quote_id=%s notifier disabled, sent without notification", q.ID)
		res.Outcome = FinalizeOutcomeSentWithoutNotification
	default:
		n := u.quoteNotification(sent, project, artifact, pdf)
		if err := u.deps.Notifier.Notify(ctx, n); err != nil {
			log.Printf("[quote][usecase] finalize notify failed quote_id=%s to=%s err=%v", q.ID, to, err)
			res.Outcome = FinalizeOutcomeNotificationFailed
		}
	}

	log.Printf("[quote][usecase] finalize done quote_id=%s outcome=%s", q.ID, res.Outcome)
	return res, nil
}

func (u *QuoteUseCase) SetDecision(ctx context.Context, quoteID string, status entities.QuoteStatus) (entities.Quote, error) {
	if status != entities.QuoteStatusApproved && status != entities.QuoteStatusRejected {
		return entities.Quote{}, ErrInvalidDecision
	}
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusSent {
		return entities.Quote{}, ErrInvalidTransition
	}

	updated, err := u.deps.Quotes.UpdateStatus(ctx, q.ID, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if status == entities.QuoteStatusApproved {
		if _, err := u.deps.Projects.UpdateStatus(ctx, q.ProjectID, entities.ProjectStatusApproved); err != nil {
			return entities.Quote{}, err
		}
	}
	log.Printf("[quote][usecase] decision quote_id=%s status=%s", q.ID, status)
	return updated, nil
}

// ExportExcel returns the spreadsheet bytes and a suggested file name.
func (u *QuoteUseCase) ExportExcel(ctx context.Context, quoteID string) ([]byte, string, error) {
	if u.deps.ExcelRenderer == nil {
		return nil, "", &RenderError{Err: errors.New("excel export not configured")}
	}
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return nil, "", err
	}
	project, err := u.loadProject(ctx, q.ProjectID)
	if err != nil {
		return nil, "", err
	}

	b, err := u.deps.ExcelRenderer.Render(ctx, BuildQuoteDocument(q, project, u.deps.Issuer))
	if err != nil {
		return nil, "", &RenderError{Err: err}
	}
	name := fmt.Sprintf("%s-v%d.xlsx", pkg.Slugify(project.Title, "quote"), q.Version)
	return b, name, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.deps.Quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) GetByProjectID(ctx context.Context, projectID string) (entities.Quote, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Quote{}, ErrInvalidProjectID
	}

	q, err := u.deps.Quotes.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) loadProject(ctx context.Context, id string) (entities.Project, error) {
	p, err := u.deps.Projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// renderPDF renders the current item set and stores it under a new name.
func (u *QuoteUseCase) renderPDF(ctx context.Context, q entities.Quote, p entities.Project) (entities.Artifact, []byte, error) {
	doc := BuildQuoteDocument(q, p, u.deps.Issuer)
	b, err := u.deps.PDFRenderer.Render(ctx, doc)
	if err != nil {
		log.Printf("[quote][usecase] render failed quote_id=%s err=%v", q.ID, err)
		return entities.Artifact{}, nil, &RenderError{Err: err}
	}

	name := artifactObjectName(q.ID, p.Title, uuid.NewString()[:8], "pdf", u.now().UnixNano())
	artifact, err := u.deps.Artifacts.Save(ctx, name, b, "application/pdf")
	if err != nil {
		log.Printf("[quote][usecase] store artifact failed quote_id=%s object=%s err=%v", q.ID, name, err)
		return entities.Artifact{}, nil, &RenderError{Err: err}
	}
	return artifact, b, nil
}

func (u *QuoteUseCase) quoteNotification(q entities.Quote, p entities.Project, a entities.Artifact, pdf []byte) entities.Notification {
	total := pkg.FormatAmount(u.deps.Issuer.Currency, q.TotalAmount)
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "your project"
	}
	greeting := "Hello"
	if name := strings.TrimSpace(p.Client.Name); name != "" {
		greeting = "Hello " + name
	}

	var body strings.Builder
	fmt.Fprintf(&body, "<p>%s,</p>", html.EscapeString(greeting))
	fmt.Fprintf(&body, "<p>Please find attached the quote for <strong>%s</strong>.</p>", html.EscapeString(title))
	fmt.Fprintf(&body, "<p>Total: <strong>%s</strong><br/>Valid until: %s</p>", html.EscapeString(total), q.ValidUntil.Format("02 Jan 2006"))
	if u.deps.Issuer.Name != "" {
		fmt.Fprintf(&body, "<p>%s</p>", html.EscapeString(u.deps.Issuer.Name))
	}

	return entities.Notification{
		To:      strings.TrimSpace(p.Client.Email),
		Phone:   strings.TrimSpace(p.Client.Phone),
		Subject: "Your quote for " + title,
		HTML:    body.String(),
		Text:    fmt.Sprintf("%s, your quote for %s is ready. Total: %s.", greeting, title, total),
		Attachment: &entities.NotificationAttachment{
			Filename:    path.Base(a.ObjectName),
			ContentType: "application/pdf",
			Content:     pdf,
		},
	}
}

func boqRequestFor(p entities.Project) entities.BOQRequest {
	return entities.BOQRequest{
		Style:       p.Style.Name,
		SpaceType:   p.SpaceType,
		ProjectType: p.ProjectType,
		Colors:      p.Style.Colors,
		Materials:   p.Materials,
		Area:        p.AreaSqft,
	}
}
