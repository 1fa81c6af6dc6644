package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"blogplatform/internal/auth"
	"blogplatform/internal/models"
	"blogplatform/internal/repository"
	"blogplatform/internal/storage"
)

// ImageUpload описывает один загруженный файл из multipart-формы
type ImageUpload struct {
	FileName string
	File     io.Reader
	Size     int64
}

type PostInput struct {
	Title      string `validate:"required,max=255"`
	Content    string
	Categories string
	Tags       string
	Image      *ImageUpload
}

type PostService interface {
	Create(ctx context.Context, in PostInput, ident *auth.Identity) (*models.Post, error)
	GetForMutation(ctx context.Context, postID string, ident *auth.Identity) (*models.Post, error)
	Update(ctx context.Context, postID string, in PostInput, ident *auth.Identity) error
	Delete(ctx context.Context, postID string, ident *auth.Identity) error
	ListAll(ctx context.Context) ([]models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
}

func NewPostService(postRepo repository.PostRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo: postRepo,
		storage:  storage,
	}
}

func (p *postService) Create(ctx context.Context, in PostInput, ident *auth.Identity) (*models.Post, error) {
	post := &models.Post{
		AuthorID:   ident.ID,
		Title:      strings.TrimSpace(in.Title),
		Content:    in.Content,
		Categories: repository.SplitList(in.Categories),
		Tags:       repository.SplitList(in.Tags),
	}

	if in.Image != nil {
		imagePath, err := p.storage.SaveImage(ctx, in.Image.FileName, in.Image.File, in.Image.Size)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сохранении изображения: %w", err)
		}
		post.Image = imagePath
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// GetForMutation возвращает пост для редактирования/удаления. Сначала
// проверяется существование, проверка владения только после него.
func (p *postService) GetForMutation(ctx context.Context, postID string, ident *auth.Identity) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !auth.CanMutate(ident.Role, ident.ID, post.AuthorID) {
		return nil, ErrForbidden
	}

	return post, nil
}

// Update обновляет пост. Без нового файла прежнее изображение сохраняется,
// оно никогда не очищается при обновлении.
func (p *postService) Update(ctx context.Context, postID string, in PostInput, ident *auth.Identity) error {
	post, err := p.GetForMutation(ctx, postID, ident)
	if err != nil {
		return err
	}

	post.Title = strings.TrimSpace(in.Title)
	post.Content = in.Content
	post.Categories = repository.SplitList(in.Categories)
	post.Tags = repository.SplitList(in.Tags)

	if in.Image != nil {
		imagePath, err := p.storage.SaveImage(ctx, in.Image.FileName, in.Image.File, in.Image.Size)
		if err != nil {
			return fmt.Errorf("ошибка при сохранении изображения: %w", err)
		}
		post.Image = imagePath
	}

	return p.postRepo.Update(ctx, post)
}

func (p *postService) Delete(ctx context.Context, postID string, ident *auth.Identity) error {
	_, err := p.GetForMutation(ctx, postID, ident)
	if err != nil {
		return err
	}

	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) ListAll(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.ListAll(ctx)
}
