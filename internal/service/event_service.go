package service

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
)

// EventService manages event posts and their attached flyers.
type EventService struct {
	postRepo  repository.EventPostRepository
	uploadDir string
}

func NewEventService(postRepo repository.EventPostRepository, uploadDir string) (*EventService, error) {
	if postRepo == nil {
		return nil, fmt.Errorf("event post repository is required")
	}
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		log.Printf("[EventService] WARNING: could not create upload dir %s: %v", uploadDir, err)
	}
	return &EventService{
		postRepo:  postRepo,
		uploadDir: uploadDir,
	}, nil
}

// CreatePost stores a new post. The file attachment is optional.
func (s *EventService) CreatePost(file *multipart.FileHeader, description string) (*entity.EventPost, error) {
	post := &entity.EventPost{Description: description}

	if file != nil {
		url, path, err := saveUpload(file, s.uploadDir, "event", map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".webp": true,
			".pdf":  true,
		})
		if err != nil {
			return nil, err
		}
		post.FileURL = url

		if err := s.postRepo.Create(post); err != nil {
			os.Remove(path)
			return nil, fmt.Errorf("failed to store event post: %w", err)
		}
		return post, nil
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to store event post: %w", err)
	}
	return post, nil
}

// ListPosts returns all posts, newest first.
func (s *EventService) ListPosts() ([]entity.EventPost, error) {
	return s.postRepo.List()
}

// GetPost returns a single post.
func (s *EventService) GetPost(id uint) (*entity.EventPost, error) {
	return s.postRepo.GetByID(id)
}

// DeletePost removes a post and its attachment from disk.
func (s *EventService) DeletePost(id uint) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(id); err != nil {
		return err
	}

	removeUpload(s.uploadDir, post.FileURL, "EventService")
	return nil
}

// saveUpload validates the extension, writes the file under uploadDir
// with a unique name and returns the public URL and the disk path.
func saveUpload(file *multipart.FileHeader, uploadDir, prefix string, allowedExts map[string]bool) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExts[ext] {
		return "", "", fmt.Errorf("%w: unsupported file type %s", apperrors.ErrValidation, ext)
	}

	filename := fmt.Sprintf("%s_%d%s", prefix, time.Now().UnixNano(), ext)
	path := filepath.Join(uploadDir, filename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return "/uploads/" + filename, path, nil
}

// removeUpload deletes a previously saved attachment, ignoring a
// missing file.
func removeUpload(uploadDir, fileURL, component string) {
	if fileURL == "" {
		return
	}
	path := filepath.Join(uploadDir, filepath.Base(fileURL))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[%s] WARNING: could not remove file %s: %v", component, path, err)
	}
}
