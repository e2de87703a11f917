package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/riderapp/admin-console/internal/core/domain"
)

const settingsCollection = "system_settings"

// settingsDocID pins the singleton settings record to a fixed document.
const settingsDocID = "singleton"

// SettingsRepository persists the singleton system settings record.
type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection(settingsCollection)}
}

type settingsDoc struct {
	ID                  string `bson:"_id"`
	CompanyName         string `bson:"company_name"`
	TrainingFee         string `bson:"training_fee"`
	CutoffDate          int    `bson:"cutoff_date"`
	EmailNotifications  bool   `bson:"email_notifications"`
	AutoGenerateReports bool   `bson:"auto_generate_reports"`
}

// Get returns the stored record, falling back to defaults when none exists.
func (r *SettingsRepository) Get(ctx context.Context) (domain.SystemSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc settingsDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.DefaultSettings(), nil
		}
		return domain.SystemSettings{}, err
	}

	return domain.SystemSettings{
		CompanyName:         doc.CompanyName,
		TrainingFee:         doc.TrainingFee,
		CutoffDate:          doc.CutoffDate,
		EmailNotifications:  doc.EmailNotifications,
		AutoGenerateReports: doc.AutoGenerateReports,
	}, nil
}

// Put replaces the singleton record, creating it on first write.
func (r *SettingsRepository) Put(ctx context.Context, settings domain.SystemSettings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := settingsDoc{
		ID:                  settingsDocID,
		CompanyName:         settings.CompanyName,
		TrainingFee:         settings.TrainingFee,
		CutoffDate:          settings.CutoffDate,
		EmailNotifications:  settings.EmailNotifications,
		AutoGenerateReports: settings.AutoGenerateReports,
	}

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, options.Replace().SetUpsert(true))
	return err
}
