package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/arbazessaqkhan/jktfeed/models"
)

type contactRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Subject string  `json:"subject" validate:"required,max=200"`
	Message string  `json:"message" validate:"required"`
}

// ContactCreate handles the public contact form
func (h *Handler) ContactCreate(c *fiber.Ctx) error {
	var req contactRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.store.CreateContact(&contact); err != nil {
		return storeError(c, err, "contacts.create")
	}

	// The contact row is in; a missed notification is not worth a 500
	if err := h.store.CreateNotification(models.NotificationContact,
		"New contact from "+contact.Name, contact.Subject); err != nil {
		log.Error().Err(err).Msg("failed to create contact notification")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"contact": contact,
	})
}

// ContactList returns all contacts, newest first
func (h *Handler) ContactList(c *fiber.Ctx) error {
	contacts, err := h.store.ListContacts()
	if err != nil {
		return storeError(c, err, "contacts.list")
	}
	return c.JSON(contacts)
}

// ContactView returns one contact with its message thread
func (h *Handler) ContactView(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	contact, err := h.store.GetContact(uint(id))
	if err != nil {
		return storeError(c, err, "contacts.get")
	}
	return c.JSON(contact)
}

type messageRequest struct {
	Body string `json:"body" validate:"required"`
}

// ContactReply appends an admin reply to a contact's thread
func (h *Handler) ContactReply(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req messageRequest
	if !h.parseBody(c, &req) {
		return nil
	}

	msg, err := h.store.AddMessage(uint(id), models.SenderAdmin, req.Body)
	if err != nil {
		return storeError(c, err, "contacts.reply")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": msg,
	})
}
