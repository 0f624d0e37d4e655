package handlers

import (
	"errors"

	"taskhive/domain/dto"
	"taskhive/domain/services"
	"taskhive/pkg/logger"
	"taskhive/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	tags, err := h.tagService.List(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Tag list failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]*dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, dto.TagToTagResponse(tag))
	}

	return utils.SuccessResponse(c, responses)
}

func (h *TagHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	tag, err := h.tagService.Create(ctx, user.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Tag create failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TagToTagResponse(tag))
}

func (h *TagHandler) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Tag not found")
	}

	tag, err := h.tagService.Get(ctx, user.ID, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Tag not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TagToTagResponse(tag))
}

func (h *TagHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Tag not found")
	}

	var req dto.UpdateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	tag, err := h.tagService.Update(ctx, user.ID, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Tag not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TagToTagResponse(tag))
}

func (h *TagHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Tag not found")
	}

	if err := h.tagService.Delete(ctx, user.ID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Tag not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}
