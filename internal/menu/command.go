package menu

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/logging"
	"github.com/atomicstack/menu-admin/internal/logging/events"
)

// ActionResult reports an action that finished without touching the server.
type ActionResult struct {
	Info string
	Err  error
}

var openImageFn = func(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// ReloadCommand fetches the full menu and reports it as SnapshotLoaded.
func ReloadCommand(api Gateway, reason string) tea.Cmd {
	return func() tea.Msg {
		events.Store.Reload(reason)
		snap, err := api.Menu(context.Background())
		if err != nil {
			logging.Error(err)
			events.Store.ReloadFailed(err)
			return SnapshotLoaded{Reason: reason, Err: err}
		}
		return SnapshotLoaded{Reason: reason, Snapshot: snap}
	}
}

// WithSeq wraps cmd so a MutationResult it produces carries seq.
func WithSeq(cmd tea.Cmd, seq uint64) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if result, ok := msg.(MutationResult); ok {
			result.Seq = seq
			return result
		}
		return msg
	}
}

// mutate runs op and then reloads the menu so the result always carries the
// server state after the change.
func mutate(ctx Context, id string, op func(context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		bg := context.Background()
		info, err := op(bg)
		if err != nil {
			logging.Error(err)
			return MutationResult{ID: id, Err: err}
		}
		snap, err := ctx.API.Menu(bg)
		if err != nil {
			logging.Error(err)
			events.Store.ReloadFailed(err)
			return MutationResult{ID: id, Info: info, ReloadErr: err}
		}
		return MutationResult{ID: id, Info: info, Snapshot: snap}
	}
}

func CreateCategoryCommand(ctx Context, in CategoryInput) tea.Cmd {
	return mutate(ctx, ActionCategoryAdd, func(c context.Context) (string, error) {
		slug := ""
		if in.Slug != nil {
			slug = *in.Slug
		}
		events.Category.Create(in.NameUZ, slug)
		created, err := ctx.API.CreateCategory(c, in)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created category %s", created.Slug), nil
	})
}

func UpdateCategoryCommand(ctx Context, slug string, in CategoryUpdate) tea.Cmd {
	return mutate(ctx, ActionCategoryEdit, func(c context.Context) (string, error) {
		events.Category.Update(slug, in.NameUZ)
		if _, err := ctx.API.UpdateCategory(c, slug, in); err != nil {
			return "", err
		}
		return fmt.Sprintf("Updated category %s", slug), nil
	})
}

func DeleteCategoryCommand(ctx Context, slug string) tea.Cmd {
	return mutate(ctx, ActionCategoryDelete, func(c context.Context) (string, error) {
		events.Category.Delete(slug)
		if err := ctx.API.DeleteCategory(c, slug); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted category %s", slug), nil
	})
}

// CreateItemCommand uploads imagePath first when it is set; a failed upload
// aborts before the item is created.
func CreateItemCommand(ctx Context, in ItemInput, imagePath string) tea.Cmd {
	return mutate(ctx, ActionItemAdd, func(c context.Context) (string, error) {
		url, err := uploadImage(c, ctx.API, imagePath)
		if err != nil {
			return "", err
		}
		in.ImageURL = url
		events.Item.Create(in.CategorySlug, in.NameUZ)
		created, err := ctx.API.CreateItem(c, in)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created item %d", created.ID), nil
	})
}

// UpdateItemCommand uploads imagePath first when it is set and only then
// sends the patch, with image_url added.
func UpdateItemCommand(ctx Context, id int64, patch ItemPatch, imagePath string) tea.Cmd {
	return mutate(ctx, ActionItemEdit, func(c context.Context) (string, error) {
		url, err := uploadImage(c, ctx.API, imagePath)
		if err != nil {
			return "", err
		}
		if url != nil {
			patch.ImageURL = url
		}
		events.Item.Update(id)
		if _, err := ctx.API.UpdateItem(c, id, patch); err != nil {
			return "", err
		}
		return fmt.Sprintf("Updated item %d", id), nil
	})
}

func DeleteItemCommand(ctx Context, id int64) tea.Cmd {
	return mutate(ctx, ActionItemDelete, func(c context.Context) (string, error) {
		events.Item.Delete(id)
		if err := ctx.API.DeleteItem(c, id); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted item %d", id), nil
	})
}

func uploadImage(ctx context.Context, api Gateway, path string) (*string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	events.Item.Upload(path)
	f, err := openImageFn(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	url, err := api.Upload(ctx, filepath.Base(path), f)
	if err != nil {
		return nil, err
	}
	return &url, nil
}
