package lead

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"paradise/internal/domain"
	"paradise/internal/notify"
	"paradise/internal/pkg/validator"
	"paradise/internal/repository"
)

var allowedExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
}

// Service runs the intake pipeline and the operator-side lead workflow.
type Service struct {
	repo Repository

	// fan-out order: admin email, auto-reply, chat bot
	adminSender     notify.Sender
	autoReplySender notify.Sender
	chatSender      notify.Sender

	uploadDir     string
	maxUploadSize int64
}

func NewService(
	repo Repository,
	adminSender notify.Sender,
	autoReplySender notify.Sender,
	chatSender notify.Sender,
	uploadDir string,
	maxUploadSize int64,
) *Service {
	return &Service{
		repo:            repo,
		adminSender:     adminSender,
		autoReplySender: autoReplySender,
		chatSender:      chatSender,
		uploadDir:       uploadDir,
		maxUploadSize:   maxUploadSize,
	}
}

// Submit validates the request, persists the lead transactionally and then
// best-effort-notifies. Once the row is committed, notification failures can
// no longer change the outcome: the caller gets the lead and a localized
// thank-you message regardless.
func (s *Service) Submit(ctx context.Context, req SubmitRequest, file *multipart.FileHeader, ip, userAgent string) (*domain.Lead, string, error) {
	if req.Language == "" {
		req.Language = string(domain.LangRU)
	}

	if verr := s.validate(req, file); verr != nil {
		return nil, "", verr
	}

	filePath := ""
	if file != nil {
		saved, err := s.storeAttachment(file)
		if err != nil {
			return nil, "", fmt.Errorf("store attachment: %w", err)
		}
		filePath = saved
	}

	lead := &domain.Lead{
		Name:        req.Name,
		Company:     req.Company,
		Phone:       req.Phone,
		Email:       req.Email,
		ProductType: domain.ProductType(req.ProductType),
		Quantity:    req.Quantity,
		Message:     req.Message,
		FilePath:    filePath,
		Status:      domain.LeadNew,
		Source:      req.Source,
		Language:    req.Language,
		IPAddress:   ip,
		UserAgent:   userAgent,
	}

	if err := s.repo.CreateTx(ctx, lead); err != nil {
		if filePath != "" {
			// the row never made it in, so the stored file must not linger
			if rmErr := os.Remove(filepath.Join(s.uploadDir, filepath.FromSlash(filePath))); rmErr != nil {
				log.Printf("attachment_cleanup_failed path=%s error=%q", filePath, rmErr)
			}
		}
		return nil, "", err
	}

	s.notifyAll(ctx, lead)

	log.Printf("lead_created id=%d company=%q language=%s", lead.ID, lead.Company, lead.Language)
	return lead, thankYouMessage(req.Language), nil
}

// notifyAll runs the senders strictly in sequence. Every failure is terminal
// for that attempt only: it is logged, swallowed, and the next sender still runs.
func (s *Service) notifyAll(ctx context.Context, lead *domain.Lead) {
	senders := []notify.Sender{s.adminSender, s.autoReplySender, s.chatSender}
	for _, sender := range senders {
		if sender == nil {
			continue
		}
		if sender == s.autoReplySender && lead.Email == "" {
			continue
		}
		if err := sender.Send(ctx, lead); err != nil {
			log.Printf("notification_failed sender=%s lead_id=%d error=%q", sender.Name(), lead.ID, err)
		}
	}
}

func (s *Service) validate(req SubmitRequest, file *multipart.FileHeader) *ValidationError {
	verr := newValidationError()

	for field, tags := range validator.Validate(req) {
		for _, tag := range tags {
			verr.add(field, fmt.Sprintf("Недопустимое значение (%s)", tag))
		}
	}

	if req.Phone != "" && !phoneValid(req.Phone) {
		verr.add("phone", "Номер телефона слишком короткий")
	}

	if file != nil {
		if err := validateFile(file.Filename, file.Size, s.maxUploadSize); err != nil {
			verr.add("file", err.Error())
		}
	}

	if verr.empty() {
		return nil
	}
	return verr
}

// phoneValid strips separators and requires at least 9 digit or plus characters.
func phoneValid(phone string) bool {
	cleaned := 0
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			cleaned++
		}
	}
	return cleaned >= 9
}

func validateFile(name string, size, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf("Размер файла не должен превышать %d МБ", maxSize/(1024*1024))
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return errors.New("Недопустимый формат файла. Разрешены: .pdf, .doc, .docx, .jpg, .jpeg, .png, .gif")
	}
	return nil
}

// storeAttachment writes the upload under uploadDir/leads/YYYY/MM/ with a
// uuid-prefixed name and returns the relative path recorded on the lead.
func (s *Service) storeAttachment(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	now := time.Now()
	relDir := filepath.Join("leads", fmt.Sprintf("%d", now.Year()), fmt.Sprintf("%02d", now.Month()))
	absDir := filepath.Join(s.uploadDir, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(fileHeader.Filename))
	absPath := filepath.Join(absDir, name)

	dst, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absPath)
		return "", err
	}

	return filepath.ToSlash(filepath.Join(relDir, name)), nil
}

/* ---------- operator workflow ---------- */

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

func (s *Service) List(ctx context.Context, f repository.LeadFilters) (*ListResponse, error) {
	leads, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	return &ListResponse{Leads: leads, Total: total}, nil
}

// Update mutates workflow fields only; provenance stays as captured at intake.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Lead, error) {
	lead, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lead.Status = req.Status
	lead.Notes = req.Notes
	if err := s.repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	stats, err := s.repo.Stats(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]int64, len(stats.ByProductType))
	for k, v := range stats.ByProductType {
		byProduct[string(k)] = v
	}

	recent := stats.Recent
	if recent == nil {
		recent = []domain.Lead{}
	}

	return &StatsResponse{
		TotalLeads:     stats.Total,
		NewLeads:       stats.ByStatus[domain.LeadNew],
		ContactedLeads: stats.ByStatus[domain.LeadContacted],
		QualifiedLeads: stats.ByStatus[domain.LeadQualified],
		ClosedLeads:    stats.ByStatus[domain.LeadClosed],
		LeadsThisWeek:  stats.ThisWeek,
		LeadsThisMonth: stats.ThisMonth,
		ByProductType:  byProduct,
		ByLanguage:     stats.ByLanguage,
		RecentLeads:    recent,
	}, nil
}

// ExportCSV streams the filtered lead set as a BOM-prefixed UTF-8 CSV.
func (s *Service) ExportCSV(ctx context.Context, f repository.LeadFilters, w io.Writer) (int, error) {
	leads, err := s.repo.ListAll(ctx, f)
	if err != nil {
		return 0, err
	}
	if err := writeCSV(w, leads); err != nil {
		return 0, err
	}
	return len(leads), nil
}
