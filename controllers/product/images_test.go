package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

func uploadImage(t *testing.T, r *gin.Engine, productID uint, filename string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes for " + filename))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/admin/products/%d/images", productID), &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(t *testing.T, r *gin.Engine, db *gorm.DB, slug string) uint {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/admin/products", testPayload(slug))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created.ID
}

func storedFile(uploadDir string, image *models.ProductImage) string {
	return filepath.Join(uploadDir, filepath.Base(image.ImageURL))
}

func TestUploadProductImageReplacesSet(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	db := setupTestDB(t)
	r := setupRouter(db)
	productID := createProduct(t, r, db, "imaged-product")

	w := uploadImage(t, r, productID, "first.jpg")
	require.Equal(t, http.StatusCreated, w.Code)

	var first models.ProductImage
	require.NoError(t, db.Where("product_id = ?", productID).First(&first).Error)
	assert.True(t, first.IsPrimary)
	firstPath := storedFile(dir, &first)
	_, err := os.Stat(firstPath)
	require.NoError(t, err, "first upload must land on disk")

	w = uploadImage(t, r, productID, "second.jpg")
	require.Equal(t, http.StatusCreated, w.Code)

	var images []models.ProductImage
	require.NoError(t, db.Where("product_id = ?", productID).Find(&images).Error)
	require.Len(t, images, 1, "upload replaces the whole image set")
	assert.True(t, images[0].IsPrimary)
	assert.NotEqual(t, first.ImageURL, images[0].ImageURL)

	_, err = os.Stat(firstPath)
	assert.True(t, os.IsNotExist(err), "superseded file must be deleted")

	var primaryCount int64
	require.NoError(t, db.Model(&models.ProductImage{}).
		Where("product_id = ? AND is_primary = ?", productID, true).
		Count(&primaryCount).Error)
	assert.EqualValues(t, 1, primaryCount)
}

func TestUploadProductImageValidation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	db := setupTestDB(t)
	r := setupRouter(db)

	t.Run("UnknownProduct", func(t *testing.T) {
		w := uploadImage(t, r, 999, "orphan.jpg")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("MissingFile", func(t *testing.T) {
		productID := createProduct(t, r, db, "no-file-product")

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/admin/products/%d/images", productID), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteProductImage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	db := setupTestDB(t)
	r := setupRouter(db)
	productID := createProduct(t, r, db, "deletable-image-product")

	w := uploadImage(t, r, productID, "only.jpg")
	require.Equal(t, http.StatusCreated, w.Code)

	var image models.ProductImage
	require.NoError(t, db.Where("product_id = ?", productID).First(&image).Error)

	t.Run("WrongProductScope", func(t *testing.T) {
		otherID := createProduct(t, r, db, "other-product")
		w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d/images/%d", otherID, image.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("RemovesRowAndFile", func(t *testing.T) {
		path := storedFile(dir, &image)
		w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d/images/%d", productID, image.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		require.NoError(t, db.Model(&models.ProductImage{}).Where("product_id = ?", productID).Count(&count).Error)
		assert.Zero(t, count)

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		// No primary remains until the next upload; that is the contract.
	})
}
