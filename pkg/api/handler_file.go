package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps multipart uploads at 100 MiB.
const maxUploadBytes = 100 << 20

// uploadFileHandler handles POST /files (multipart). The blob lands in
// the uploads directory; PDFs get a page-count probe for pricing.
func (s *Server) uploadFileHandler(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field: " + err.Error()})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the upload size limit"})
		return
	}

	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload: " + err.Error()})
		return
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload: " + err.Error()})
		return
	}

	f, err := s.files.Upload(c.Request.Context(), userID(c),
		header.Filename, header.Header.Get("Content-Type"), c.PostForm("description"), content)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFileResponse(f))
}

// registerFileURLHandler handles POST /files/url: record a remote file
// by reference without fetching it.
func (s *Server) registerFileURLHandler(c *gin.Context) {
	var req RegisterFileURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	f, err := s.files.RegisterURL(c.Request.Context(), userID(c),
		req.Filename, req.ContentType, req.URL, req.Description)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFileResponse(f))
}

// listFilesHandler handles GET /files.
func (s *Server) listFilesHandler(c *gin.Context) {
	files, err := s.files.ListFiles(c.Request.Context(), userID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]FileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, toFileResponse(f))
	}
	c.JSON(http.StatusOK, out)
}

// getFileHandler handles GET /files/:id.
func (s *Server) getFileHandler(c *gin.Context) {
	f, err := s.files.GetFile(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFileResponse(f))
}
