package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"blogplatform/internal/auth"
	"blogplatform/internal/render"
	"blogplatform/internal/repository"
	"blogplatform/internal/service"
)

// ListPosts - публичная лента, новые посты первыми
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListAll(r.Context())
	if err != nil {
		log.Printf("ошибка при получении постов: %v", err)
		setFlash(w, "error", "Не удалось загрузить посты")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.render(w, r, http.StatusOK, "posts.html", &render.HTMLData{
		Title: "Посты",
		Posts: posts,
	})
}

func (h *Handlers) CreatePostForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "create-post.html", &render.HTMLData{Title: "Новый пост"})
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())

	in, ok := h.parsePostForm(w, r, "/posts/create")
	if !ok {
		return
	}

	_, err := h.PostService.Create(r.Context(), in, ident)
	if err != nil {
		log.Printf("ошибка при создании поста: %v", err)
		setFlash(w, "error", "Не удалось создать пост")
		http.Redirect(w, r, "/posts/create", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Пост создан")
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

func (h *Handlers) EditPostForm(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetForMutation(r.Context(), postID, ident)
	if err != nil {
		h.redirectPostError(w, r, err, "загрузке")
		return
	}

	h.render(w, r, http.StatusOK, "edit-post.html", &render.HTMLData{
		Title: "Редактирование поста",
		Post:  post,
	})
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())
	postID := mux.Vars(r)["id"]

	in, ok := h.parsePostForm(w, r, "/posts/edit/"+postID)
	if !ok {
		return
	}

	err := h.PostService.Update(r.Context(), postID, in, ident)
	if err != nil {
		h.redirectPostError(w, r, err, "обновлении")
		return
	}

	setFlash(w, "success", "Пост обновлен")
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())
	postID := mux.Vars(r)["id"]

	err := h.PostService.Delete(r.Context(), postID, ident)
	if err != nil {
		h.redirectPostError(w, r, err, "удалении")
		return
	}

	setFlash(w, "success", "Пост удален")
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

// parsePostForm читает multipart-форму поста. Изображение попадает во ввод
// только если файл реально пришел в этом запросе.
func (h *Handlers) parsePostForm(w http.ResponseWriter, r *http.Request, backURL string) (service.PostInput, bool) {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		setFlash(w, "error", "Некорректная форма или слишком большой файл")
		http.Redirect(w, r, backURL, http.StatusSeeOther)
		return service.PostInput{}, false
	}

	in := service.PostInput{
		Title:      strings.TrimSpace(r.PostFormValue("title")),
		Content:    r.PostFormValue("content"),
		Categories: r.PostFormValue("categories"),
		Tags:       r.PostFormValue("tags"),
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		in.Image = &service.ImageUpload{
			FileName: header.Filename,
			File:     file,
			Size:     header.Size,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		setFlash(w, "error", "Не удалось прочитать изображение")
		http.Redirect(w, r, backURL, http.StatusSeeOther)
		return service.PostInput{}, false
	}

	if err := h.Validate.Struct(in); err != nil {
		setFlash(w, "error", "Заголовок обязателен")
		http.Redirect(w, r, backURL, http.StatusSeeOther)
		return service.PostInput{}, false
	}

	return in, true
}

func (h *Handlers) redirectPostError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, repository.ErrPostNotFound):
		setFlash(w, "error", "Пост не найден")
	case errors.Is(err, service.ErrForbidden):
		setFlash(w, "error", "Нет прав на это действие")
	default:
		log.Printf("ошибка при %s поста: %v", action, err)
		setFlash(w, "error", "Ошибка сервера, попробуйте позже")
	}
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}
