package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"signage/internal/service"
)

// ManageScreens returns the management view data: every screen joined
// against the content registry plus the full content list to assign from.
func ManageScreens(contentSvc service.ContentService, screenSvc service.ScreenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		screens, err := screenSvc.ListResolved(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		content, err := contentSvc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"screens": screens,
			"content": content,
		})
	}
}

// AssignContent sets or clears a screen's assignment from form fields
// screen_id and content_id; an empty content_id means unassign. The
// screen is upserted, so assigning to an unknown name creates it.
func AssignContent(screenSvc service.ScreenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		screenID := c.FormValue("screen_id")
		contentID := c.FormValue("content_id")

		var target *string
		if contentID != "" {
			target = &contentID
		}

		screen, err := screenSvc.Assign(c.UserContext(), screenID, target)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrScreenIDRequired):
				return writeError(c, fiber.StatusBadRequest, "SCREEN_ID_REQUIRED", "screen_id is required")
			case errors.Is(err, service.ErrInvalidContentID):
				return writeError(c, fiber.StatusBadRequest, "INVALID_CONTENT_ID", "invalid content id")
			case errors.Is(err, service.ErrAssignmentVerification):
				return writeError(c, fiber.StatusBadGateway, "ASSIGNMENT_VERIFICATION_FAILED",
					fmt.Sprintf("content assignment to screen %s failed verification", screenID))
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		msg := fmt.Sprintf("Content assigned to screen %s successfully!", screenID)
		if target == nil {
			msg = fmt.Sprintf("Content unassigned from screen %s successfully!", screenID)
		}
		return c.JSON(fiber.Map{
			"message": msg,
			"screen":  screen,
		})
	}
}

// DeleteScreen removes a screen. Deleting an unknown screen succeeds,
// and assigned content is never touched.
func DeleteScreen(screenSvc service.ScreenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := screenSvc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrScreenIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "SCREEN_ID_REQUIRED", "screen id is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("Screen %s deleted.", id)})
	}
}

// ScreenPoll is the JSON endpoint display clients poll. Unknown screens
// are auto-registered on first poll; the response shape is a
// compatibility contract, so it is the service's PollResult verbatim.
func ScreenPoll(screenSvc service.ScreenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		result, err := screenSvc.Poll(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrScreenIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "SCREEN_ID_REQUIRED", "screen id is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(result)
	}
}

// DisplayShell serves the minimal rendering shell for a screen. The
// shell polls the screen API and swaps in an <img> or <video> element
// for whatever is currently assigned.
func DisplayShell() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		html := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Screen %[1]s</title>
  <style>
    html, body { margin: 0; height: 100%%; background: #000; }
    #stage { display: flex; align-items: center; justify-content: center; height: 100%%; color: #666; font-family: sans-serif; }
    #stage img, #stage video { max-width: 100%%; max-height: 100%%; }
  </style>
</head>
<body>
  <div id="stage">Waiting for content…</div>
  <script>
    const screenId = %[1]q;
    let currentContentId = null;
    async function poll() {
      try {
        const res = await fetch('/api/screen/' + encodeURIComponent(screenId));
        const data = await res.json();
        const stage = document.getElementById('stage');
        if (!data.content) {
          currentContentId = null;
          stage.textContent = data.message || 'No content assigned yet.';
          return;
        }
        if (data.content.content_id === currentContentId) return;
        currentContentId = data.content.content_id;
        if (data.content.mimetype.startsWith('video/')) {
          stage.innerHTML = '<video autoplay loop muted playsinline></video>';
          stage.firstChild.src = data.content.url;
        } else {
          stage.innerHTML = '<img alt="" />';
          stage.firstChild.src = data.content.url;
        }
      } catch (e) {
        // keep showing the last good content; retry on the next tick
      }
    }
    poll();
    setInterval(poll, 10000);
  </script>
</body>
</html>`, id)
		return c.Type("html").SendString(html)
	}
}
