package service

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
)

// ShortsService manages short-form videos for the landing page.
type ShortsService struct {
	shortsRepo repository.ShortsRepository
	uploadDir  string
}

func NewShortsService(shortsRepo repository.ShortsRepository, uploadDir string) (*ShortsService, error) {
	if shortsRepo == nil {
		return nil, fmt.Errorf("shorts repository is required")
	}
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		log.Printf("[ShortsService] WARNING: could not create upload dir %s: %v", uploadDir, err)
	}
	return &ShortsService{
		shortsRepo: shortsRepo,
		uploadDir:  uploadDir,
	}, nil
}

// CreateShort saves the video file and stores the short.
func (s *ShortsService) CreateShort(file *multipart.FileHeader, title, caption string) (*entity.Short, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if file == nil {
		return nil, fmt.Errorf("%w: video file is required", apperrors.ErrValidation)
	}

	url, path, err := saveUpload(file, s.uploadDir, "short", map[string]bool{
		".mp4":  true,
		".webm": true,
		".mov":  true,
	})
	if err != nil {
		return nil, err
	}

	short := &entity.Short{
		Title:    title,
		Caption:  caption,
		VideoURL: url,
	}
	if err := s.shortsRepo.Create(short); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to store short: %w", err)
	}

	log.Printf("[ShortsService] created short #%d: %s", short.ID, short.Title)
	return short, nil
}

// ListShorts returns all shorts, newest first.
func (s *ShortsService) ListShorts() ([]entity.Short, error) {
	return s.shortsRepo.List()
}

// GetShort returns a single short.
func (s *ShortsService) GetShort(id uint) (*entity.Short, error) {
	return s.shortsRepo.GetByID(id)
}

// DeleteShort removes a short and its video file.
func (s *ShortsService) DeleteShort(id uint) error {
	short, err := s.shortsRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.shortsRepo.Delete(id); err != nil {
		return err
	}

	removeUpload(s.uploadDir, short.VideoURL, "ShortsService")
	return nil
}
