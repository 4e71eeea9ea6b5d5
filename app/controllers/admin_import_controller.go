package controllers

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/hostpick/hostpick/app/models"
	"github.com/hostpick/hostpick/app/repository"
	"github.com/hostpick/hostpick/internal/pkg/bulkimport"
	"github.com/hostpick/hostpick/internal/pkg/importarchive"
	"github.com/hostpick/hostpick/internal/pkg/statistics"
)

// archiveClient is set up lazily; S3 archiving of import files is optional
var archiveClient *importarchive.Client

// InitializeImportArchive connects the optional S3 archive for import files
func InitializeImportArchive() {
	cfg, err := importarchive.LoadConfig()
	if err != nil {
		log.Warnf("[Import] archive config: %v", err)
		return
	}
	if !cfg.IsEnabled() {
		return
	}

	client, err := importarchive.NewClient(cfg)
	if err != nil {
		log.Warnf("[Import] archive disabled: %v", err)
		return
	}
	archiveClient = client
}

// importUpload is the parsed upload plus everything the preview needs
type importUpload struct {
	entity   bulkimport.Entity
	filename string
	raw      []byte
	headers  []string
	mapping  bulkimport.Mapping
	records  []bulkimport.Record
}

func readImportUpload(c *fiber.Ctx) (*importUpload, error) {
	entity, err := bulkimport.ParseEntity(c.Params("entity"))
	if err != nil {
		return nil, err
	}

	up := &importUpload{entity: entity, filename: "import.csv"}

	if fileHeader, ferr := c.FormFile("file"); ferr == nil {
		up.filename = fileHeader.Filename
		f, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		up.raw, err = io.ReadAll(f)
		if err != nil {
			return nil, err
		}
	} else {
		// raw body fallback for API clients
		up.raw = append(up.raw, c.Body()...)
		if strings.Contains(c.Get(fiber.HeaderContentType), "json") {
			up.filename = "import.json"
		}
	}

	isJSON := strings.EqualFold(filepath.Ext(up.filename), ".json") ||
		strings.HasPrefix(strings.TrimSpace(string(up.raw)), "[")

	if isJSON {
		records, err := bulkimport.ParseJSON(string(up.raw))
		if err != nil {
			return nil, err
		}
		up.records = records
		return up, nil
	}

	data, err := bulkimport.ParseCSV(string(up.raw))
	if err != nil {
		return nil, err
	}
	up.headers = data.Headers

	up.mapping = bulkimport.SuggestMapping(data.Headers, entity)
	if rawMapping := c.FormValue("mapping"); rawMapping != "" {
		var m bulkimport.Mapping
		if err := json.Unmarshal([]byte(rawMapping), &m); err != nil {
			return nil, err
		}
		up.mapping = m
	}

	up.records = bulkimport.MapRows(data, up.mapping)
	return up, nil
}

// HandleAdminImportPreview parses an upload and returns the suggested
// mapping plus validation problems without writing anything.
func HandleAdminImportPreview(c *fiber.Ctx) error {
	up, err := readImportUpload(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "invalid_import", err.Error())
	}

	problems := bulkimport.Validate(up.records, up.entity)

	sample := up.records
	if len(sample) > 10 {
		sample = sample[:10]
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"entity":   up.entity,
			"headers":  up.headers,
			"mapping":  up.mapping,
			"rows":     len(up.records),
			"sample":   sample,
			"problems": problems,
		},
	})
}

// HandleAdminImportSubmit validates and persists an import upload.
// Validation problems block the whole submit.
func HandleAdminImportSubmit(c *fiber.Ctx) error {
	if !models.GetAppSettings().IsImportEnabled() {
		return errorJSON(c, fiber.StatusForbidden, "import_disabled", "bulk import is disabled")
	}

	up, err := readImportUpload(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "invalid_import", err.Error())
	}

	if problems := bulkimport.Validate(up.records, up.entity); len(problems) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":    "validation_failed",
			"message":  "fix the listed problems and retry",
			"problems": problems,
		})
	}

	submitter := repository.NewCatalogSubmitter(repository.GetGlobalRepositories())
	result, err := bulkimport.Submit(c.Context(), submitter, up.entity, up.records)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "import_failed",
			"message": err.Error(),
			"result":  result,
		})
	}

	// Keep the original upload for auditing when S3 archiving is on
	if archiveClient != nil {
		if _, err := archiveClient.ArchiveFile(string(up.entity), up.filename, up.raw); err != nil {
			log.Warnf("[Import] archiving %s: %v", up.filename, err)
		}
	}

	go statistics.UpdateStatisticsCache()

	return c.JSON(fiber.Map{"data": result})
}
