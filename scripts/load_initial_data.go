package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"loadout-backend/internal/config"
	"loadout-backend/internal/database"
	"loadout-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ModelData struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type AttachmentTypeData struct {
	Name string `yaml:"name"`
	Slot string `yaml:"slot"`
}

type AttachmentData struct {
	Model string   `yaml:"model"`
	Type  string   `yaml:"type"`
	Pros  []string `yaml:"pros,omitempty"`
	Cons  []string `yaml:"cons,omitempty"`
}

// ReferenceFile is one YAML document of reference data. Any section may be
// omitted; sections from every file under the data directory are merged.
type ReferenceFile struct {
	Models          []ModelData          `yaml:"models"`
	AttachmentTypes []AttachmentTypeData `yaml:"attachment_types"`
	Attachments     []AttachmentData     `yaml:"attachments"`
}

func main() {
	log.Println("🚀 Loading reference data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Reference data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	data, err := loadReferenceFiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load reference files: %w", err)
	}

	// Models first, attachments resolve them by name
	modelMap := make(map[string]*models.Model)
	modelCreated := 0
	for _, modelData := range data.Models {
		model, created, err := createModel(db, modelData)
		if err != nil {
			return fmt.Errorf("failed to create model %s: %w", modelData.Name, err)
		}
		modelMap[modelData.Name] = model
		if created {
			modelCreated++
		}
	}
	log.Printf("📋 Models: %d created, %d total", modelCreated, len(data.Models))

	typeMap := make(map[string]*models.AttachmentType)
	typeCreated := 0
	for _, typeData := range data.AttachmentTypes {
		attachmentType, created, err := createAttachmentType(db, typeData)
		if err != nil {
			return fmt.Errorf("failed to create attachment type %s: %w", typeData.Name, err)
		}
		typeMap[typeData.Name] = attachmentType
		if created {
			typeCreated++
		}
	}
	log.Printf("📋 Attachment types: %d created, %d total", typeCreated, len(data.AttachmentTypes))

	attachmentCreated := 0
	for _, attachmentData := range data.Attachments {
		created, err := createAttachment(db, attachmentData, modelMap, typeMap)
		if err != nil {
			return fmt.Errorf("failed to create attachment %s/%s: %w", attachmentData.Model, attachmentData.Type, err)
		}
		if created {
			attachmentCreated++
		}
	}
	log.Printf("📋 Attachments: %d created, %d total", attachmentCreated, len(data.Attachments))

	return nil
}

func loadReferenceFiles(dataDir string) (*ReferenceFile, error) {
	merged := &ReferenceFile{}
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file ReferenceFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		merged.Models = append(merged.Models, file.Models...)
		merged.AttachmentTypes = append(merged.AttachmentTypes, file.AttachmentTypes...)
		merged.Attachments = append(merged.Attachments, file.Attachments...)
		return nil
	})
	return merged, err
}

func createModel(db *gorm.DB, modelData ModelData) (*models.Model, bool, error) {
	category := models.WeaponCategory(strings.ToLower(modelData.Type))
	if !category.IsValid() {
		return nil, false, fmt.Errorf("unknown weapon category %q", modelData.Type)
	}

	var model models.Model
	err := db.Where("name = ?", modelData.Name).First(&model).Error
	if err == nil {
		return &model, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query model: %w", err)
	}

	model = models.Model{Name: modelData.Name, Type: category}
	if err := db.Create(&model).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create model: %w", err)
	}
	return &model, true, nil
}

func createAttachmentType(db *gorm.DB, typeData AttachmentTypeData) (*models.AttachmentType, bool, error) {
	slot := models.AttachmentSlot(strings.ToLower(typeData.Slot))
	if !slot.IsValid() {
		return nil, false, fmt.Errorf("unknown attachment slot %q", typeData.Slot)
	}

	var attachmentType models.AttachmentType
	err := db.Where("name = ?", typeData.Name).First(&attachmentType).Error
	if err == nil {
		return &attachmentType, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query attachment type: %w", err)
	}

	attachmentType = models.AttachmentType{Name: typeData.Name, Type: slot}
	if err := db.Create(&attachmentType).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create attachment type: %w", err)
	}
	return &attachmentType, true, nil
}

func createAttachment(db *gorm.DB, attachmentData AttachmentData, modelMap map[string]*models.Model, typeMap map[string]*models.AttachmentType) (bool, error) {
	model, ok := modelMap[attachmentData.Model]
	if !ok {
		return false, fmt.Errorf("model %q is not defined", attachmentData.Model)
	}
	attachmentType, ok := typeMap[attachmentData.Type]
	if !ok {
		return false, fmt.Errorf("attachment type %q is not defined", attachmentData.Type)
	}

	var existing models.Attachment
	err := db.Where("model = ? AND type = ?", model.ID, attachmentType.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query attachment: %w", err)
	}

	attachment := models.Attachment{
		ModelID:         model.ID,
		TypeID:          attachmentType.ID,
		Characteristics: models.NewCharacteristics(attachmentData.Pros, attachmentData.Cons),
	}
	if err := db.Create(&attachment).Error; err != nil {
		return false, fmt.Errorf("failed to create attachment: %w", err)
	}
	return true, nil
}
