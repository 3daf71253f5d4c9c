package endpoints

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/playhouse/internal/db"
	"github.com/Nixie-Tech-LLC/playhouse/internal/http/api"
	"github.com/Nixie-Tech-LLC/playhouse/internal/http/api/admin/packets"
	"github.com/Nixie-Tech-LLC/playhouse/internal/imaging"
	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
	"github.com/Nixie-Tech-LLC/playhouse/internal/notify"
	"github.com/Nixie-Tech-LLC/playhouse/internal/storage"
	"github.com/Nixie-Tech-LLC/playhouse/internal/validation"
)

type ContentController struct {
	store    db.Store
	storage  storage.Storage
	notifier notify.Notifier
}

func newContentController(store db.Store, storage storage.Storage, notifier notify.Notifier) *ContentController {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &ContentController{store: store, storage: storage, notifier: notifier}
}

// ContentModule mounts add/list/update endpoints for every page.
func ContentModule(store db.Store, storage storage.Storage, notifier notify.Notifier) api.Module {
	ctl := newContentController(store, storage, notifier)
	return api.ModuleFunc(func(c *api.Controller) {
		for _, page := range model.Pages() {
			c.POST("/Add/"+page.String(), ctl.addContent(page))
			c.GET("/Get/"+page.String(), ctl.listContent(page))
			c.POST("/Update/"+page.String(), ctl.updateContent(page))
		}
		// published clients still call the misspelled route
		c.GET("/Get/Envirnoment", ctl.listContent(model.PageEnvironment))
	})
}

// GET /admin/Get/<Page>
func (c *ContentController) listContent(page model.Page) api.HandlerFuncWithAuth {
	return func(ctx *gin.Context, user *model.User) (any, *api.APIError) {
		all, err := c.store.ListContentByPage(page)
		if err != nil {
			return nil, api.Internal(fmt.Sprintf("Error while fetching %s", page.Label()), err)
		}
		if len(all) == 0 {
			return nil, api.Fail(http.StatusNotFound, fmt.Sprintf("No %s Found", page.Label()))
		}

		out := make([]packets.ContentResponse, 0, len(all))
		for _, x := range all {
			out = append(out, packets.NewContentResponse(x))
		}
		return api.OK(fmt.Sprintf("%s List", page.Label()), out), nil
	}
}

// POST /admin/Add/<Page>
func (c *ContentController) addContent(page model.Page) api.HandlerFuncWithAuth {
	return func(ctx *gin.Context, user *model.User) (any, *api.APIError) {
		var request packets.AddContentRequest
		if err := validation.Bind(ctx, &request); err != nil {
			return nil, api.Fail(http.StatusUnprocessableEntity, validation.FirstError(err))
		}
		info, err := imaging.Check(request.Image)
		if err != nil {
			return nil, api.Fail(http.StatusUnprocessableEntity, err.Error())
		}

		summary := fmt.Sprintf("Error while adding %s", page.Label())

		imageURL, err := c.storage.SaveFile(request.Image, info.Filename(request.Image.Filename))
		if err != nil {
			log.Error().Err(err).Str("page", page.String()).Msg("[content] addContent: upload failed")
			return nil, api.Internal(summary, err)
		}

		content, err := c.store.CreateContent(page, model.EscapeContent(request.Content), imageURL, request.Heading)
		if err != nil {
			log.Error().Err(err).Str("page", page.String()).Msg("[content] addContent: db create failed")
			return nil, api.Internal(summary, err)
		}

		log.Info().Int("id", content.ID).Str("page", page.String()).Int("admin_id", user.ID).Msg("[content] added")
		c.notifier.ContentChanged(notify.ContentCreated, content)

		return api.Created(fmt.Sprintf("%s Added Successfully", page.Label()), packets.NewContentResponse(content)), nil
	}
}

// POST /admin/Update/<Page>
func (c *ContentController) updateContent(page model.Page) api.HandlerFuncWithAuth {
	return func(ctx *gin.Context, user *model.User) (any, *api.APIError) {
		var request packets.UpdateContentRequest
		if err := validation.Bind(ctx, &request); err != nil {
			return nil, api.Fail(http.StatusUnprocessableEntity, validation.FirstError(err))
		}
		var info imaging.Info
		if request.Image != nil {
			var err error
			if info, err = imaging.Check(request.Image); err != nil {
				return nil, api.Fail(http.StatusUnprocessableEntity, err.Error())
			}
		}

		summary := fmt.Sprintf("Error while updating %s", page.Label())

		existing, err := c.store.GetContentByID(request.ID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, api.Fail(http.StatusNotFound, "No data found with the provided Id")
		}
		if err != nil {
			return nil, api.Internal(summary, err)
		}

		if existing.Page != page {
			log.Warn().Int("id", existing.ID).Str("page", existing.Page.String()).Str("route", page.String()).
				Msg("[content] updateContent: cross page edit rejected")
			return nil, api.Fail(http.StatusBadRequest,
				fmt.Sprintf("Content found, but it does not belong to the %s page", page.Label()))
		}

		if request.Empty() {
			return nil, api.Fail(http.StatusBadRequest, "Provide the field that you want to update")
		}

		imageURL := existing.ImageURL
		if request.Image != nil {
			imageURL, err = c.storage.SaveFile(request.Image, info.Filename(request.Image.Filename))
			if err != nil {
				log.Error().Err(err).Int("id", existing.ID).Msg("[content] updateContent: upload failed")
				return nil, api.Internal(summary, err)
			}
		}

		body := existing.Content
		if request.Content != "" {
			body = model.EscapeContent(request.Content)
		}
		heading := existing.Heading
		if request.Heading != "" {
			heading = request.Heading
		}

		updated, err := c.store.UpdateContent(existing.ID, body, imageURL, heading)
		if err != nil {
			log.Error().Err(err).Int("id", existing.ID).Msg("[content] updateContent: db update failed")
			return nil, api.Internal(summary, err)
		}

		log.Info().Int("id", updated.ID).Str("page", page.String()).Int("admin_id", user.ID).Msg("[content] updated")
		c.notifier.ContentChanged(notify.ContentUpdated, updated)

		return api.OK(fmt.Sprintf("%s Updated Successfully", page.Label()), packets.NewContentResponse(updated)), nil
	}
}
