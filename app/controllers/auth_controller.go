package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/hostpick/hostpick/app/models"
	"github.com/hostpick/hostpick/internal/pkg/database"
	"github.com/hostpick/hostpick/internal/pkg/env"
	"github.com/hostpick/hostpick/internal/pkg/hcaptcha"
	"github.com/hostpick/hostpick/internal/pkg/mail"
	"github.com/hostpick/hostpick/internal/pkg/session"
	"github.com/hostpick/hostpick/internal/pkg/statistics"
	"github.com/hostpick/hostpick/internal/pkg/usercontext"
)

// Session keys, shared with the user context middleware.
const (
	AUTH_KEY       string = usercontext.AuthKey
	USER_ID        string = usercontext.KeyUserID
	USER_NAME      string = usercontext.KeyUsername
	USER_IS_ADMIN  string = usercontext.KeyIsAdmin
	USER_TIER      string = usercontext.KeyTier
	FROM_PROTECTED string = usercontext.KeyFromProtected
)

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		var (
			user models.User
			err  error
		)
		fm := fiber.Map{
			"type": "error",
		}

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		result := database.GetDB().Where("email = ?", c.FormValue("email")).First(&user)
		if result.Error != nil {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect("/login")
		}

		if models.CheckPasswordHash(c.FormValue("password"), user.Password) == false {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect("/login")
		}

		if !user.IsActive() {
			fm["message"] = "Please activate your account first"

			return flash.WithError(c, fm).Redirect("/login")
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		sess.Set(AUTH_KEY, true)
		sess.Set(USER_ID, user.ID)
		sess.Set(USER_NAME, user.Name)
		sess.Set(USER_IS_ADMIN, user.Role == models.ROLE_ADMIN)
		sess.Set(USER_TIER, user.Tier)

		err = sess.Save()
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		database.GetDB().Model(&user).Update("last_login_at", time.Now())

		fm = fiber.Map{
			"type":    "success",
			"message": "Welcome back!",
		}

		return flash.WithSuccess(c, fm).Redirect("/")
	}

	return c.Render("auth/login", fiber.Map{
		"Page":          "login",
		"FromProtected": isLoggedIn(c),
		"Username":      ExtractUsername(c),
		"Msg":           flash.Get(c),
		"CSRFToken":     c.Locals("csrf"),
	}, "layouts/main")
}

func HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect("/login")
	}

	err = sess.Destroy()
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Bye bye! See you soon.",
	}

	c.Locals(FROM_PROTECTED, false)

	return flash.WithSuccess(c, fm).Redirect("/login")
}

func HandleAuthRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		// Verify hCaptcha token
		hcaptchaToken := c.FormValue("h-captcha-response")
		valid, err := hcaptcha.Verify(hcaptchaToken)
		if err != nil || !valid {
			errorMsg := "Captcha validation failed. Please try again."
			if err != nil && env.IsDev() {
				errorMsg = fmt.Sprintf("Captcha validation failed: %v", err)
			}

			fm := fiber.Map{
				"type":    "error",
				"message": errorMsg,
			}
			return flash.WithError(c, fm).Redirect("/register")
		}

		// Create user after successful captcha validation
		user, err := models.CreateUser(c.FormValue("username"), c.FormValue("email"), c.FormValue("password"))
		if err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		if err := user.GenerateActivationToken(); err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		err = database.GetDB().Create(&user).Error
		if err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		sendActivationMail(user)

		// Update statistics after registration
		go statistics.UpdateStatisticsCache()

		fm := fiber.Map{
			"type":    "success",
			"message": "Registration successful! Check your inbox for the activation link.",
		}

		return flash.WithSuccess(c, fm).Redirect("/login")
	}

	return c.Render("auth/register", fiber.Map{
		"Page":            "register",
		"FromProtected":   isLoggedIn(c),
		"Username":        ExtractUsername(c),
		"Msg":             flash.Get(c),
		"CSRFToken":       c.Locals("csrf"),
		"HCaptchaSitekey": env.GetEnv("HCAPTCHA_SITEKEY", ""),
	}, "layouts/main")
}

// HandleAuthActivate activates an account via the emailed token
func HandleAuthActivate(c *fiber.Ctx) error {
	token := c.Query("token", c.FormValue("token"))
	if token == "" {
		fm := fiber.Map{
			"type":    "error",
			"message": "Activation token is missing",
		}
		return flash.WithError(c, fm).Redirect("/login")
	}

	var user models.User
	result := database.GetDB().Where("activation_token = ?", token).First(&user)
	if result.Error != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Invalid or expired activation token",
		}
		return flash.WithError(c, fm).Redirect("/login")
	}

	err := database.GetDB().Model(&user).Updates(map[string]interface{}{
		"status":           models.STATUS_ACTIVE,
		"activation_token": "",
	}).Error
	if err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": fmt.Sprintf("something went wrong: %s", err),
		}
		return flash.WithError(c, fm).Redirect("/login")
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Your account is active. You can log in now.",
	}
	return flash.WithSuccess(c, fm).Redirect("/login")
}

func sendActivationMail(user *models.User) {
	if user.ActivationToken == "" {
		return
	}

	base := env.GetEnv("PUBLIC_DOMAIN", "http://localhost:"+env.GetEnv("APP_PORT", "4000"))
	link := fmt.Sprintf("%s/activate?token=%s", base, user.ActivationToken)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>please confirm your registration:</p><p><a href=\"%s\">%s</a></p>",
		user.Name, link, link,
	)

	// best effort, the user can request a new mail
	go mail.SendMail(user.Email, "Activate your account", body)
}
