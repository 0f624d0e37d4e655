package handlers

import (
	"errors"
	"strconv"

	"taskhive/domain/dto"
	"taskhive/domain/services"
	"taskhive/pkg/logger"
	"taskhive/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	params, err := parseTaskQueryParams(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	board, err := h.taskService.Query(ctx, user.ID, params)
	if err != nil {
		logger.ErrorContext(ctx, "Task query failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, board)
}

func (h *TaskHandler) TopLevel(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	params, err := parseTaskQueryParams(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	board, err := h.taskService.TopLevel(ctx, user.ID, params)
	if err != nil {
		logger.ErrorContext(ctx, "Top-level task query failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, board)
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.Create(ctx, user.ID, &req)
	if err != nil {
		return h.respondTaskError(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	task, err := h.taskService.Get(ctx, user.ID, id)
	if err != nil {
		return h.respondTaskError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) Subtasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	set, err := h.taskService.Subtasks(ctx, user.ID, id)
	if err != nil {
		return h.respondTaskError(c, err)
	}

	return utils.SuccessResponse(c, set)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.Update(ctx, user.ID, id, &req)
	if err != nil {
		return h.respondTaskError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) Replace(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.Replace(ctx, user.ID, id, &req)
	if err != nil {
		return h.respondTaskError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	keepSubtasks := true
	if raw := c.Query("keep_subtasks"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			keepSubtasks = parsed
		}
	}

	result, err := h.taskService.Delete(ctx, user.ID, id, keepSubtasks)
	if err != nil {
		return h.respondTaskError(c, err)
	}

	switch {
	case result.Kept != nil:
		return utils.SuccessResponse(c, result.Kept)
	case result.Deleted != nil:
		return utils.SuccessResponse(c, result.Deleted)
	default:
		return utils.NoContentResponse(c)
	}
}

func (h *TaskHandler) respondTaskError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, "Task not found")
	}

	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		return utils.ValidationErrorResponse(c, []utils.FieldError{
			{Field: vErr.Field, Message: vErr.Message},
		})
	}

	logger.ErrorContext(c.UserContext(), "Task operation failed", "error", err)
	return utils.InternalServerErrorResponse(c)
}

// parseTaskQueryParams reads the list endpoint's filter and sort surface.
// Values are passed through as-is; malformed ones are ignored downstream.
func parseTaskQueryParams(c *fiber.Ctx) (dto.TaskQueryParams, error) {
	var params dto.TaskQueryParams
	if err := c.QueryParser(&params); err != nil {
		return params, err
	}
	return params, nil
}
