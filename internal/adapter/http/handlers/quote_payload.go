package handlers

import (
	"fmt"
	"io"
	"strings"

	request "quickquote/internal/adapter/http/dto/request"
	"quickquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	formFieldQuote    = "quote"
	formFieldImages   = "images"
	formFieldComments = "comments"
)

// bindQuotePayload decodes a JSON body into dst, or a multipart form whose
// "quote" part holds the JSON and whose "images" files (with a parallel list of
// "comments") are the attachments.
func bindQuotePayload(c *gin.Context, dst any) ([]usecase.PendingImage, error) {
	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		if err := c.ShouldBindJSON(dst); err != nil {
			return nil, err
		}
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	raw := strings.TrimSpace(c.PostForm(formFieldQuote))
	if raw == "" {
		raw = "{}"
	}
	if err := binding.JSON.BindBody([]byte(raw), dst); err != nil {
		return nil, err
	}

	files := form.File[formFieldImages]
	comments := form.Value[formFieldComments]
	pending := make([]usecase.PendingImage, 0, len(files))
	for i, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		img := usecase.PendingImage{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		}
		if i < len(comments) {
			img.Comment = comments[i]
		}
		pending = append(pending, img)
	}
	return pending, nil
}

func inlineImages(images []request.ImageRequest) []usecase.PendingImage {
	out := make([]usecase.PendingImage, 0, len(images))
	for _, img := range images {
		out = append(out, usecase.PendingImage{
			FileName:    img.FileName,
			ContentType: img.ContentType,
			Data:        img.Data,
			Comment:     img.Comment,
		})
	}
	return out
}
