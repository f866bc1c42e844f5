package testutils

import (
	"time"

	"loadout-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModelFactory provides methods to create test Model data
type ModelFactory struct{}

// NewModelFactory creates a new ModelFactory
func NewModelFactory() *ModelFactory {
	return &ModelFactory{}
}

// Create creates a test Model with default values
func (f *ModelFactory) Create() *models.Model {
	return &models.Model{
		Name: "M4",
		Type: models.WeaponCategoryAssault,
	}
}

// WithName sets a custom name for the model
func (f *ModelFactory) WithName(name string) *models.Model {
	m := f.Create()
	m.Name = name
	return m
}

// AttachmentTypeFactory provides methods to create test AttachmentType data
type AttachmentTypeFactory struct{}

// NewAttachmentTypeFactory creates a new AttachmentTypeFactory
func NewAttachmentTypeFactory() *AttachmentTypeFactory {
	return &AttachmentTypeFactory{}
}

// Create creates a test AttachmentType with a unique name
func (f *AttachmentTypeFactory) Create() *models.AttachmentType {
	return &models.AttachmentType{
		Name: "Monolithic Suppressor " + uuid.New().String()[:6],
		Type: models.SlotMuzzle,
	}
}

// WithName sets a custom name for the attachment type
func (f *AttachmentTypeFactory) WithName(name string) *models.AttachmentType {
	a := f.Create()
	a.Name = name
	return a
}

// AttachmentFactory provides methods to create test Attachment data
type AttachmentFactory struct{}

// NewAttachmentFactory creates a new AttachmentFactory
func NewAttachmentFactory() *AttachmentFactory {
	return &AttachmentFactory{}
}

// Create creates a test Attachment for the given model and type
func (f *AttachmentFactory) Create(modelID, typeID uint) *models.Attachment {
	return &models.Attachment{
		ModelID:         modelID,
		TypeID:          typeID,
		Characteristics: models.NewCharacteristics([]string{"Sound Suppression"}, []string{"ADS Time"}),
	}
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with a unique username
func (f *ProfileFactory) Create() *models.Profile {
	id := uuid.New()
	return &models.Profile{
		ID:        id,
		Username:  "user-" + id.String()[:8],
		UpdatedAt: time.Now(),
	}
}

// WithLikes sets the liked posts for the profile
func (f *ProfileFactory) WithLikes(liked ...string) *models.Profile {
	p := f.Create()
	p.LikedPosts = models.JoinList(liked)
	return p
}

// LoadoutFactory provides methods to create test Loadout data
type LoadoutFactory struct{}

// NewLoadoutFactory creates a new LoadoutFactory
func NewLoadoutFactory() *LoadoutFactory {
	return &LoadoutFactory{}
}

// Create creates a test Loadout owned by the profile
func (f *LoadoutFactory) Create(owner *models.Profile, modelID uint) *models.Loadout {
	return &models.Loadout{
		OwnedModel: models.OwnedModel{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       "Run and gun",
		User:       owner.ID,
		Username:   owner.Username,
		ModelID:    modelID,
		Tags:       "meta,aggressive",
	}
}

// Fixture is a small, fully linked data set
type Fixture struct {
	Model          *models.Model
	AttachmentType *models.AttachmentType
	Attachment     *models.Attachment
	Owner          *models.Profile
	Loadout        *models.Loadout
	Rating         *models.LoadoutRating
}

// SeedFixture inserts a model, attachment type, attachment, owner profile,
// loadout and its rating directly through gorm
func SeedFixture(db *gorm.DB, rating int) (*Fixture, error) {
	fx := &Fixture{
		Model:          NewModelFactory().Create(),
		AttachmentType: NewAttachmentTypeFactory().Create(),
		Owner:          NewProfileFactory().Create(),
	}
	if err := db.Create(fx.Model).Error; err != nil {
		return nil, err
	}
	if err := db.Create(fx.AttachmentType).Error; err != nil {
		return nil, err
	}
	fx.Attachment = NewAttachmentFactory().Create(fx.Model.ID, fx.AttachmentType.ID)
	if err := db.Create(fx.Attachment).Error; err != nil {
		return nil, err
	}
	if err := db.Create(fx.Owner).Error; err != nil {
		return nil, err
	}
	fx.Loadout = NewLoadoutFactory().Create(fx.Owner, fx.Model.ID)
	if err := db.Omit("WeaponModel", "Rating").Create(fx.Loadout).Error; err != nil {
		return nil, err
	}
	fx.Rating = &models.LoadoutRating{ID: fx.Loadout.ID, Rating: rating}
	if err := db.Create(fx.Rating).Error; err != nil {
		return nil, err
	}
	return fx, nil
}
