package server

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/chaos-io/peptide-catalog/catalog"
	"github.com/chaos-io/peptide-catalog/storage"
)

// Uploads younger than this are skipped; their product may not be appended yet.
const auditGracePeriod = 5 * time.Minute

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ImageAuditor finds stored images that no product references. Image writes and
// product appends are not atomic, so a failed request can leave such files behind.
type ImageAuditor struct {
	store  *catalog.Store
	images *storage.LocalStore
	delete bool
	now    func() time.Time
}

func NewImageAuditor(store *catalog.Store, images *storage.LocalStore, deleteOrphans bool) *ImageAuditor {
	return &ImageAuditor{store: store, images: images, delete: deleteOrphans, now: time.Now}
}

// Run returns the orphaned file names, removing them when configured to.
func (a *ImageAuditor) Run() ([]string, error) {
	names, err := a.images.List()
	if err != nil {
		return nil, err
	}

	referenced := a.store.ImageURLs()
	cutoff := a.now().Add(-auditGracePeriod)

	var orphans []string
	for _, name := range names {
		if _, ok := referenced[storage.ImageURL(name)]; ok {
			continue
		}
		info, err := os.Stat(filepath.Join(a.images.Dir(), name))
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		orphans = append(orphans, name)
	}

	for _, name := range orphans {
		if !a.delete {
			zap.L().Warn("orphaned product image", zap.String("file", name))
			continue
		}
		if err := a.images.Remove(name); err != nil {
			zap.L().Error("failed to remove orphaned image", zap.String("file", name), zap.Error(err))
			continue
		}
		zap.L().Info("removed orphaned image", zap.String("file", name))
	}
	return orphans, nil
}

// Schedule starts the audit on the given cron schedule. The caller stops the returned scheduler.
func (a *ImageAuditor) Schedule(schedule string) (*cron.Cron, error) {
	sched := cron.New(cron.WithParser(cronParser))
	_, err := sched.AddFunc(schedule, func() {
		defer func() {
			if err := recover(); err != nil {
				zap.S().Error(err)
			}
		}()
		if _, err := a.Run(); err != nil {
			zap.L().Error("image audit failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}
