package events

import "github.com/atomicstack/menu-admin/internal/logging"

type CategoryTracer struct{}

type ItemTracer struct{}

type FormReason string

const (
	FormReasonEscape     FormReason = "escape"
	FormReasonValidation FormReason = "validation"
)

var (
	Category = CategoryTracer{}
	Item     = ItemTracer{}
)

func (CategoryTracer) AddPrompt(existing int) {
	logging.Trace("category.add.prompt", map[string]interface{}{"existing": existing})
}

func (CategoryTracer) EditPrompt(slug string) {
	logging.Trace("category.edit.prompt", map[string]interface{}{"slug": slug})
}

func (CategoryTracer) DeletePrompt(slug string) {
	logging.Trace("category.delete.prompt", map[string]interface{}{"slug": slug})
}

func (CategoryTracer) Create(nameUZ, slug string) {
	logging.Trace("category.create", map[string]interface{}{"name_uz": nameUZ, "slug": slug})
}

func (CategoryTracer) Update(slug, nameUZ string) {
	logging.Trace("category.update", map[string]interface{}{"slug": slug, "name_uz": nameUZ})
}

func (CategoryTracer) Delete(slug string) {
	logging.Trace("category.delete", map[string]interface{}{"slug": slug})
}

func (CategoryTracer) Cancel(reason FormReason) {
	logging.Trace("category.form.cancel", map[string]interface{}{"reason": string(reason)})
}

func (ItemTracer) AddPrompt(categories int) {
	logging.Trace("item.add.prompt", map[string]interface{}{"categories": categories})
}

func (ItemTracer) EditPrompt(id int64) {
	logging.Trace("item.edit.prompt", map[string]interface{}{"id": id})
}

func (ItemTracer) DeletePrompt(id int64) {
	logging.Trace("item.delete.prompt", map[string]interface{}{"id": id})
}

func (ItemTracer) Upload(path string) {
	logging.Trace("item.upload", map[string]interface{}{"path": path})
}

func (ItemTracer) Create(categorySlug, nameUZ string) {
	logging.Trace("item.create", map[string]interface{}{"category": categorySlug, "name_uz": nameUZ})
}

func (ItemTracer) Update(id int64) {
	logging.Trace("item.update", map[string]interface{}{"id": id})
}

func (ItemTracer) Delete(id int64) {
	logging.Trace("item.delete", map[string]interface{}{"id": id})
}

func (ItemTracer) Cancel(reason FormReason) {
	logging.Trace("item.form.cancel", map[string]interface{}{"reason": string(reason)})
}
