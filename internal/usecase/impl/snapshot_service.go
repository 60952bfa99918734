package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	deliverycontext "lifelink/internal/delivery/context"
	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/errors"
	"lifelink/internal/usecase"
	"lifelink/internal/util"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/fx"
)

// snapshotNamespace derives stable ids for records whose original id is not a UUID.
var snapshotNamespace = uuid.MustParse("6f1c7a2e-3b8d-5e4f-9a10-2c3d4e5f6a7b")

var snapshotJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// snapshotDocument keeps the storage keys of the browser app so its exports can be imported as is.
// lifelink_current_user is accepted and ignored.
type snapshotDocument struct {
	Users         []snapshotUser    `json:"lifelink_users"`
	EmergencyInfo []snapshotProfile `json:"lifelink_emergency_info"`
	QRCodes       []snapshotCode    `json:"lifelink_qr_codes"`
}

type snapshotUser struct {
	ID      string   `json:"id"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	QRCodes []string `json:"qrCodes"`
}

type snapshotProfile struct {
	ID                   string     `json:"id"`
	QRCode               string     `json:"qrCode"`
	Name                 string     `json:"name"`
	EmergencyContact     string     `json:"emergencyContact"`
	EmergencyContactName string     `json:"emergencyContactName"`
	BloodGroup           string     `json:"bloodGroup"`
	Allergies            string     `json:"allergies"`
	MedicalConditions    string     `json:"medicalConditions"`
	CustomMessage        string     `json:"customMessage"`
	IsActive             bool       `json:"isActive"`
	CreatedAt            time.Time  `json:"createdAt"`
	LastScanned          *time.Time `json:"lastScanned,omitempty"`
}

type snapshotCode struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Status          string    `json:"status"`
	LinkedUserID    *string   `json:"linkedUserId,omitempty"`
	EmergencyInfoID *string   `json:"emergencyInfoId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	ScansCount      int64     `json:"scansCount"`
}

// snapshotService implements the SnapshotUsecase interface.
type snapshotService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// SnapshotServiceParams holds dependencies for SnapshotService, injected by Fx.
type SnapshotServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewSnapshotService is the constructor for snapshotService.
func NewSnapshotService(params SnapshotServiceParams) usecase.SnapshotUsecase {
	return &snapshotService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *snapshotService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Export writes every user, profile and code as one document read inside a single transaction.
func (srv *snapshotService) Export(ctx context.Context, w io.Writer) error {
	doc := snapshotDocument{
		Users:         []snapshotUser{},
		EmergencyInfo: []snapshotProfile{},
		QRCodes:       []snapshotCode{},
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users, err := repoFactory.NewUserRepository().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		for _, u := range users {
			doc.Users = append(doc.Users, toSnapshotUser(u))
		}

		profiles, err := repoFactory.NewProfileRepository().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		for _, p := range profiles {
			doc.EmergencyInfo = append(doc.EmergencyInfo, toSnapshotProfile(p))
		}

		codes, err := repoFactory.NewQRCodeRepository().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list codes")
		}
		for _, c := range codes {
			doc.QRCodes = append(doc.QRCodes, toSnapshotCode(c))
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to read snapshot")
	}

	if err := snapshotJSON.NewEncoder(w).Encode(&doc); err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}

	srv.log(ctx).Info("Snapshot exported",
		slog.Int("users", len(doc.Users)), slog.Int("profiles", len(doc.EmergencyInfo)), slog.Int("codes", len(doc.QRCodes)))

	return nil
}

// Import upserts every record by id in one transaction. A user whose email is
// already registered is merged into the existing account. Every code the
// document touches is then reconciled so the registry keeps one active
// profile per code and linked status only where that profile exists.
func (srv *snapshotService) Import(ctx context.Context, r io.Reader) (*usecase.ImportResult, error) {
	var doc snapshotDocument
	if err := snapshotJSON.NewDecoder(r).Decode(&doc); err != nil {
		return nil, domainerrors.ErrSnapshotInvalid.WithDetails(err.Error())
	}

	result := &usecase.ImportResult{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userIDs := make(map[uuid.UUID]uuid.UUID, len(doc.Users))
		owners := make(map[string]uuid.UUID)

		userRepo := repoFactory.NewUserRepository()
		for _, su := range doc.Users {
			imported, targetID, err := srv.importUser(ctx, userRepo, su)
			if err != nil {
				return err
			}
			userIDs[imported] = targetID
			for _, code := range su.QRCodes {
				if _, ok := owners[code]; !ok {
					owners[code] = targetID
				}
			}
			result.Users++
		}

		var touched []string
		seen := make(map[string]struct{})
		touch := func(code string) {
			if _, ok := seen[code]; !ok {
				seen[code] = struct{}{}
				touched = append(touched, code)
			}
		}

		profileRepo := repoFactory.NewProfileRepository()
		for _, sp := range doc.EmergencyInfo {
			profile, err := fromSnapshotProfile(sp)
			if err != nil {
				return err
			}
			if err := profileRepo.Save(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to import profile")
			}
			touch(profile.QRCode)
			result.Profiles++
		}

		codeRepo := repoFactory.NewQRCodeRepository()
		for _, sc := range doc.QRCodes {
			code, err := fromSnapshotCode(sc, userIDs)
			if err != nil {
				return err
			}
			existing, err := codeRepo.FindByCode(ctx, code.Code)
			switch {
			case err == nil:
				code.ID = existing.ID
			case !errors.Is(err, repository.ErrQRCodeNotFound):
				return errors.Wrap(err, "failed to check imported code")
			}
			if err := codeRepo.Save(ctx, code); err != nil {
				return errors.Wrap(err, "failed to import code")
			}
			touch(code.Code)
			result.Codes++
		}

		for _, code := range touched {
			deactivated, err := reconcileCode(ctx, repoFactory, code, owners)
			if err != nil {
				return err
			}
			result.Deactivated += deactivated
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Snapshot import failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to import snapshot")
	}

	srv.log(ctx).Info("Snapshot imported",
		slog.Int("users", result.Users), slog.Int("profiles", result.Profiles), slog.Int("codes", result.Codes),
		slog.Int("deactivated", result.Deactivated))

	return result, nil
}

// importUser returns the id the snapshot used and the id the user is stored under.
func (srv *snapshotService) importUser(ctx context.Context, userRepo repository.UserRepository, su snapshotUser) (uuid.UUID, uuid.UUID, error) {
	id, err := snapshotID(su.ID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	email := util.NormalizeEmail(su.Email)
	if email == "" {
		return uuid.Nil, uuid.Nil, domainerrors.ErrSnapshotInvalid.WithDetails("user " + su.ID + " has no email")
	}

	existing, err := userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		for _, code := range su.QRCodes {
			existing.AddCode(code)
		}
		if su.Name != "" {
			existing.Name = su.Name
		}
		if err := userRepo.Update(ctx, existing); err != nil {
			return uuid.Nil, uuid.Nil, errors.Wrap(err, "failed to merge imported user")
		}

		return id, existing.ID, nil
	case !errors.Is(err, repository.ErrUserNotFound):
		return uuid.Nil, uuid.Nil, errors.Wrap(err, "failed to check imported user")
	}

	user := &entity.User{ID: id, Email: email, Name: su.Name, QRCodes: []string{}}
	for _, code := range su.QRCodes {
		user.AddCode(code)
	}
	if err := userRepo.Save(ctx, user); err != nil {
		return uuid.Nil, uuid.Nil, errors.Wrap(err, "failed to import user")
	}

	return id, id, nil
}

// reconcileCode settles one code after an import and returns how many
// profiles it switched off.
//
// The active profile the code already points at wins, otherwise the newest
// active one. A winner links the code to its owner (the code's own linked
// user, or the imported user listing it). Without a winner a linked code
// falls back to unused. Profiles on unknown codes, active profiles on sold
// codes and links to missing users reject the document.
func reconcileCode(ctx context.Context, repos repository.RepositoryFactory, value string, owners map[string]uuid.UUID) (int, error) {
	codeRepo := repos.NewQRCodeRepository()
	profileRepo := repos.NewProfileRepository()
	userRepo := repos.NewUserRepository()

	code, err := codeRepo.FindByCode(ctx, value)
	if err != nil {
		if errors.Is(err, repository.ErrQRCodeNotFound) {
			return 0, domainerrors.ErrSnapshotInvalid.WithDetails("profile references unknown code " + value)
		}

		return 0, errors.Wrap(err, "failed to load imported code")
	}

	profiles, err := profileRepo.FindByCodes(ctx, []string{value})
	if err != nil {
		return 0, errors.Wrap(err, "failed to load imported profiles")
	}

	winner := pickActiveProfile(code, profiles)
	deactivated := 0
	for _, p := range profiles {
		if !p.IsActive || p == winner {
			continue
		}
		p.IsActive = false
		if err := profileRepo.Save(ctx, p); err != nil {
			return 0, errors.Wrap(err, "failed to deactivate profile")
		}
		deactivated++
	}

	if winner == nil {
		if code.Status != entity.CodeStatusLinked {
			return deactivated, nil
		}
		code.Status = entity.CodeStatusUnused
		code.LinkedUserID = nil
		code.EmergencyInfoID = nil
		if err := codeRepo.Save(ctx, code); err != nil {
			return 0, errors.Wrap(err, "failed to unlink code")
		}

		return deactivated, nil
	}

	if code.Status == entity.CodeStatusSold {
		return 0, domainerrors.ErrSnapshotInvalid.WithDetails("sold code " + value + " has an active profile")
	}

	var ownerID uuid.UUID
	switch {
	case code.LinkedUserID != nil:
		ownerID = *code.LinkedUserID
	default:
		id, ok := owners[value]
		if !ok {
			return 0, domainerrors.ErrSnapshotInvalid.WithDetails("active profile on code " + value + " has no owner")
		}
		ownerID = id
	}

	owner, err := userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, domainerrors.ErrSnapshotInvalid.WithDetails("code " + value + " is linked to an unknown user")
		}

		return 0, errors.Wrap(err, "failed to load code owner")
	}
	if owner.AddCode(value) {
		if err := userRepo.Update(ctx, owner); err != nil {
			return 0, errors.Wrap(err, "failed to attach code to owner")
		}
	}

	code.Link(ownerID, winner.ID)
	if err := codeRepo.Save(ctx, code); err != nil {
		return 0, errors.Wrap(err, "failed to link imported code")
	}

	return deactivated, nil
}

func pickActiveProfile(code *entity.QRCode, profiles []*entity.EmergencyProfile) *entity.EmergencyProfile {
	var newest *entity.EmergencyProfile
	for _, p := range profiles {
		if !p.IsActive {
			continue
		}
		if code.EmergencyInfoID != nil && p.ID == *code.EmergencyInfoID {
			return p
		}
		if newest == nil || p.CreatedAt.After(newest.CreatedAt) {
			newest = p
		}
	}

	return newest
}

func snapshotID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, domainerrors.ErrSnapshotInvalid.WithDetails("record without id")
	}
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	return uuid.NewSHA1(snapshotNamespace, []byte(raw)), nil
}

func toSnapshotUser(u *entity.User) snapshotUser {
	codes := u.QRCodes
	if codes == nil {
		codes = []string{}
	}

	return snapshotUser{ID: u.ID.String(), Email: u.Email, Name: u.Name, QRCodes: codes}
}

func toSnapshotProfile(p *entity.EmergencyProfile) snapshotProfile {
	return snapshotProfile{
		ID:                   p.ID.String(),
		QRCode:               p.QRCode,
		Name:                 p.Name,
		EmergencyContact:     p.EmergencyContact,
		EmergencyContactName: p.EmergencyContactName,
		BloodGroup:           p.BloodGroup,
		Allergies:            p.Allergies,
		MedicalConditions:    p.MedicalConditions,
		CustomMessage:        p.CustomMessage,
		IsActive:             p.IsActive,
		CreatedAt:            p.CreatedAt.UTC(),
		LastScanned:          p.LastScanned,
	}
}

func toSnapshotCode(c *entity.QRCode) snapshotCode {
	sc := snapshotCode{
		ID:         c.ID.String(),
		Code:       c.Code,
		Status:     c.Status.String(),
		CreatedAt:  c.CreatedAt.UTC(),
		ScansCount: c.ScansCount,
	}
	if c.LinkedUserID != nil {
		s := c.LinkedUserID.String()
		sc.LinkedUserID = &s
	}
	if c.EmergencyInfoID != nil {
		s := c.EmergencyInfoID.String()
		sc.EmergencyInfoID = &s
	}

	return sc
}

func fromSnapshotProfile(sp snapshotProfile) (*entity.EmergencyProfile, error) {
	id, err := snapshotID(sp.ID)
	if err != nil {
		return nil, err
	}
	if sp.QRCode == "" {
		return nil, domainerrors.ErrSnapshotInvalid.WithDetails("profile " + sp.ID + " has no qrCode")
	}

	p := &entity.EmergencyProfile{
		ID:                   id,
		QRCode:               sp.QRCode,
		Name:                 sp.Name,
		EmergencyContact:     sp.EmergencyContact,
		EmergencyContactName: sp.EmergencyContactName,
		BloodGroup:           sp.BloodGroup,
		Allergies:            sp.Allergies,
		MedicalConditions:    sp.MedicalConditions,
		CustomMessage:        sp.CustomMessage,
		IsActive:             sp.IsActive,
		CreatedAt:            sp.CreatedAt.UTC(),
	}
	if sp.LastScanned != nil {
		t := sp.LastScanned.UTC()
		p.LastScanned = &t
	}

	return p, nil
}

func fromSnapshotCode(sc snapshotCode, userIDs map[uuid.UUID]uuid.UUID) (*entity.QRCode, error) {
	id, err := snapshotID(sc.ID)
	if err != nil {
		return nil, err
	}
	if sc.Code == "" {
		return nil, domainerrors.ErrSnapshotInvalid.WithDetails("code " + sc.ID + " has no value")
	}

	status := entity.CodeStatus(sc.Status)
	if !status.IsValid() {
		return nil, domainerrors.ErrSnapshotInvalid.WithDetails("code " + sc.Code + " has unknown status " + sc.Status)
	}

	code := &entity.QRCode{
		ID:         id,
		Code:       sc.Code,
		Status:     status,
		CreatedAt:  sc.CreatedAt.UTC(),
		ScansCount: sc.ScansCount,
	}
	if sc.LinkedUserID != nil && *sc.LinkedUserID != "" {
		linked, err := snapshotID(*sc.LinkedUserID)
		if err != nil {
			return nil, err
		}
		if target, ok := userIDs[linked]; ok {
			linked = target
		}
		code.LinkedUserID = &linked
	}
	if sc.EmergencyInfoID != nil && *sc.EmergencyInfoID != "" {
		infoID, err := snapshotID(*sc.EmergencyInfoID)
		if err != nil {
			return nil, err
		}
		code.EmergencyInfoID = &infoID
	}

	return code, nil
}
