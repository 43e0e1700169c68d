package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"cartao_fidelidade/internal/domain/entities"
	"cartao_fidelidade/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidEstablishmentName = errors.New("invalid establishment name")
	ErrInvalidEmail             = errors.New("invalid email")
	ErrInvalidThreshold         = errors.New("invalid points threshold")
	ErrInvalidTemplate          = errors.New("voucher template missing {cliente} placeholder")
	ErrInvalidLogoKey           = errors.New("invalid logo key")
	ErrLogoNotFound             = errors.New("logo object not found")
	ErrSlugAlreadyExists        = errors.New("slug already exists")
)

// CreateEstablishmentInput is the registration command for a new tenant.
type CreateEstablishmentInput struct {
	Name                   string
	Email                  string
	Phone                  string
	PointsForVoucher       int
	VoucherMessageTemplate string
	LogoKey                string
	OwnerName              string
	OwnerEmail             string
}

// IEstablishmentUseCase manages the tenant lifecycle: registration, public
// lookup by slug and the all-or-nothing cascade deletion.

type IEstablishmentUseCase interface {
	Create(ctx context.Context, input CreateEstablishmentInput) (entities.Establishment, entities.User, error)
	GetBySlug(ctx context.Context, slug string) (entities.Establishment, error)
	ListUsers(ctx context.Context, establishmentID string) ([]entities.User, error)
	Delete(ctx context.Context, establishmentID string) error
}

type EstablishmentUseCase struct {
	estRepo  interfaces.IEstablishmentRepository
	userRepo interfaces.IUserRepository
	storage  interfaces.ILogoStorage
}

var _ IEstablishmentUseCase = (*EstablishmentUseCase)(nil)

func NewEstablishmentUseCase(estRepo interfaces.IEstablishmentRepository, userRepo interfaces.IUserRepository, storage interfaces.ILogoStorage) *EstablishmentUseCase {
	return &EstablishmentUseCase{estRepo: estRepo, userRepo: userRepo, storage: storage}
}

// Create registers an establishment and its owner user. The logo must already
// exist in object storage; the subscription starts expired, so the first
// confirmed payment is what unlocks point mutations.
func (u *EstablishmentUseCase) Create(ctx context.Context, input CreateEstablishmentInput) (entities.Establishment, entities.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.Establishment{}, entities.User{}, ErrInvalidEstablishmentName
	}
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return entities.Establishment{}, entities.User{}, ErrInvalidEmail
	}
	if input.PointsForVoucher <= 0 {
		return entities.Establishment{}, entities.User{}, ErrInvalidThreshold
	}
	template := strings.TrimSpace(input.VoucherMessageTemplate)
	if template != "" && !strings.Contains(template, entities.ClientePlaceholder) {
		return entities.Establishment{}, entities.User{}, ErrInvalidTemplate
	}
	logoKey := strings.TrimSpace(input.LogoKey)
	if logoKey == "" {
		return entities.Establishment{}, entities.User{}, ErrInvalidLogoKey
	}

	ok, err := u.storage.Exists(ctx, logoKey)
	if err != nil {
		return entities.Establishment{}, entities.User{}, err
	}
	if !ok {
		return entities.Establishment{}, entities.User{}, ErrLogoNotFound
	}

	slug := Slugify(name)
	existing, err := u.estRepo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Establishment{}, entities.User{}, err
	}
	if existing.ID != "" {
		return entities.Establishment{}, entities.User{}, ErrSlugAlreadyExists
	}

	now := time.Now().UTC()
	est := entities.Establishment{
		ID:                     uuid.NewString(),
		Name:                   name,
		Email:                  email,
		Phone:                  entities.NormalizePhone(input.Phone),
		Slug:                   slug,
		PointsForVoucher:       input.PointsForVoucher,
		VoucherMessageTemplate: template,
		LogoKey:                logoKey,
		CreatedAt:              now,
	}

	ownerName := strings.TrimSpace(input.OwnerName)
	if ownerName == "" {
		ownerName = name
	}
	ownerEmail := strings.TrimSpace(input.OwnerEmail)
	if ownerEmail == "" {
		ownerEmail = email
	}
	owner := entities.User{
		ID:              uuid.NewString(),
		EstablishmentID: est.ID,
		Name:            ownerName,
		Email:           ownerEmail,
		CreatedAt:       now,
	}

	// Establishment and owner commit in one transaction; a failure leaves
	// nothing behind and the registration can simply be retried.
	created, owner, err := u.estRepo.Create(ctx, est, owner)
	if err != nil {
		return entities.Establishment{}, entities.User{}, err
	}

	log.Printf("[establishment][usecase] created id=%s slug=%s owner_id=%s", created.ID, created.Slug, owner.ID)
	return created, owner, nil
}

func (u *EstablishmentUseCase) GetBySlug(ctx context.Context, slug string) (entities.Establishment, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Establishment{}, ErrInvalidEstablishmentID
	}
	est, err := u.estRepo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Establishment{}, err
	}
	if est.ID == "" {
		return entities.Establishment{}, ErrEstablishmentNotFound
	}
	return est, nil
}

// ListUsers returns the establishment's operator users. Read-only, so the
// subscription gate is bypassed.
func (u *EstablishmentUseCase) ListUsers(ctx context.Context, establishmentID string) ([]entities.User, error) {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return nil, ErrInvalidEstablishmentID
	}

	est, err := u.estRepo.GetByID(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	if est.ID == "" {
		return nil, ErrEstablishmentNotFound
	}

	users, err := u.userRepo.ListByEstablishmentID(ctx, est.ID)
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

// Delete removes the whole tenant: movements, vouchers, cards, clients,
// payments, users and the establishment row itself. The stored logo is removed
// best-effort; a storage failure is logged, never fatal.
func (u *EstablishmentUseCase) Delete(ctx context.Context, establishmentID string) error {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return ErrInvalidEstablishmentID
	}

	est, err := u.estRepo.GetByID(ctx, establishmentID)
	if err != nil {
		return err
	}
	if est.ID == "" {
		return ErrEstablishmentNotFound
	}

	if err := u.estRepo.DeleteCascade(ctx, est.ID); err != nil {
		log.Printf("[establishment][usecase] cascade delete failed id=%s err=%v", est.ID, err)
		return err
	}

	if est.LogoKey != "" {
		if err := u.storage.Delete(ctx, est.LogoKey); err != nil {
			log.Printf("[establishment][usecase] logo delete failed id=%s key=%s err=%v", est.ID, est.LogoKey, err)
		}
	}

	log.Printf("[establishment][usecase] deleted id=%s slug=%s", est.ID, est.Slug)
	return nil
}

var slugReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "õ", "o", "ô", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

// Slugify derives the public identifier from the establishment name:
// lowercase, common accents folded, everything outside [a-z0-9] collapsed to
// single dashes.
func Slugify(name string) string {
	s := slugReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
