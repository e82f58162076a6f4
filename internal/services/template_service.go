package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"billbook/internal/gst"
	"billbook/internal/models/db_models"
	"billbook/internal/models/request_models"
	"billbook/internal/models/response_models"
	"billbook/internal/repositories"
	"billbook/internal/storage"
	"billbook/pkg/utils"
)

// TemplateFiles holds the optional file parts of the template form.
type TemplateFiles struct {
	Logo      *multipart.FileHeader
	Signature *multipart.FileHeader
	Stamp     *multipart.FileHeader
}

type TemplateServiceInterface interface {
	Upsert(ctx context.Context, userID uuid.UUID, request request_models.TemplateRequest, files TemplateFiles) (*response_models.TemplateResponse, error)
	GetCurrent(ctx context.Context, userID uuid.UUID) (*response_models.TemplateResponse, error)
}

type TemplateService struct {
	templateRepo repositories.TemplateRepository
	assets       storage.Store
	logger       *zap.Logger
}

func NewTemplateService(templateRepo repositories.TemplateRepository, assets storage.Store, logger *zap.Logger) TemplateServiceInterface {
	return &TemplateService{
		templateRepo: templateRepo,
		assets:       assets,
		logger:       logger,
	}
}

// Upsert creates or overwrites the user's single template. Asset
// references from the existing template survive when no replacement file
// is uploaded; replaced files stay on disk untouched.
func (t *TemplateService) Upsert(ctx context.Context, userID uuid.UUID, request request_models.TemplateRequest, files TemplateFiles) (*response_models.TemplateResponse, error) {
	if request.GSTNumber != "" && !gst.Validate(request.GSTNumber) {
		return nil, utils.ErrInvalidGSTNumber
	}

	logoPath, err := t.saveIfPresent("logo", files.Logo)
	if err != nil {
		return nil, err
	}
	signaturePath, err := t.saveIfPresent("sig", files.Signature)
	if err != nil {
		return nil, err
	}
	stampPath, err := t.saveIfPresent("stamp", files.Stamp)
	if err != nil {
		return nil, err
	}

	existing, err := t.templateRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	template := existing
	if template == nil {
		template = &db_models.Template{UserID: userID}
	} else {
		if logoPath == "" {
			logoPath = existing.LogoPath
		}
		if signaturePath == "" {
			signaturePath = existing.SignaturePath
		}
		if stampPath == "" {
			stampPath = existing.StampUploadPath
		}
	}

	template.BusinessName = request.BusinessName
	template.BusinessAddress = request.BusinessAddress
	template.OwnerName = request.OwnerName
	template.Mobile = request.Mobile
	template.GSTNumber = request.GSTNumber
	template.LogoPath = logoPath
	template.SignaturePath = signaturePath
	template.StampUploadPath = stampPath
	template.StampData = request.StampData
	template.StampType = request.StampType
	template.StampBusinessName = request.StampBusinessName
	template.StampPlace = request.StampPlace

	if existing == nil {
		err = t.templateRepo.Insert(ctx, template)
	} else {
		err = t.templateRepo.Update(ctx, template)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.logger.Info("template saved",
		zap.String("user_id", userID.String()),
		zap.Bool("created", existing == nil))

	return toTemplateResponse(template), nil
}

func (t *TemplateService) GetCurrent(ctx context.Context, userID uuid.UUID) (*response_models.TemplateResponse, error) {
	template, err := t.templateRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if template == nil {
		return nil, utils.ErrTemplateNotFound
	}
	return toTemplateResponse(template), nil
}

func (t *TemplateService) saveIfPresent(prefix string, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}
	return t.assets.Save(prefix, file)
}

func toTemplateResponse(template *db_models.Template) *response_models.TemplateResponse {
	return &response_models.TemplateResponse{
		ID:                template.ID.String(),
		BusinessName:      template.BusinessName,
		BusinessAddress:   template.BusinessAddress,
		OwnerName:         template.OwnerName,
		Mobile:            template.Mobile,
		GSTNumber:         template.GSTNumber,
		LogoPath:          template.LogoPath,
		SignaturePath:     template.SignaturePath,
		StampUploadPath:   template.StampUploadPath,
		StampData:         template.StampData,
		StampType:         template.StampType,
		StampBusinessName: template.StampBusinessName,
		StampPlace:        template.StampPlace,
	}
}
