package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

func isLoggedIn(c *fiber.Ctx) bool {
	var fromProtected bool
	if protectedValue := c.Locals(FROM_PROTECTED); protectedValue != nil {
		fromProtected = protectedValue.(bool)
	}

	return fromProtected
}

// ExtractUsername gets the username from Locals (set by middleware)
func ExtractUsername(c *fiber.Ctx) string {
	if userNameValue := c.Locals(USER_NAME); userNameValue != nil {
		if userName, ok := userNameValue.(string); ok {
			return userName
		}
	}

	return ""
}

// parsePagination reads ?page and ?per_page with sane bounds
func parsePagination(c *fiber.Ctx) (page, perPage, offset int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.Query("per_page", strconv.Itoa(defaultPageSize)))
	if perPage < 1 {
		perPage = defaultPageSize
	}
	if perPage > maxPageSize {
		perPage = maxPageSize
	}
	return page, perPage, (page - 1) * perPage
}

// listResponse wraps collection payloads in the data/meta/links envelope
func listResponse(c *fiber.Ctx, data interface{}, page, perPage int, total int64) error {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	base := c.Path()
	links := fiber.Map{
		"self":  pageLink(base, page, perPage),
		"first": pageLink(base, 1, perPage),
		"last":  pageLink(base, lastPage, perPage),
	}
	if page > 1 {
		links["prev"] = pageLink(base, page-1, perPage)
	}
	if page < lastPage {
		links["next"] = pageLink(base, page+1, perPage)
	}

	return c.JSON(fiber.Map{
		"data": data,
		"meta": fiber.Map{
			"page":      page,
			"per_page":  perPage,
			"total":     total,
			"last_page": lastPage,
		},
		"links": links,
	})
}

func pageLink(base string, page, perPage int) string {
	return fmt.Sprintf("%s?page=%d&per_page=%d", base, page, perPage)
}

// errorJSON is the shared error envelope for the JSON API
func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

// parseIDParam reads a numeric :id route parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}

// GetClientIP determines the actual client IP address considering proxies and dual stack
// Returns both IPv4 and IPv6 addresses if available
func GetClientIP(c *fiber.Ctx) (string, string) {
	ipv4 := ""
	ipv6 := ""

	// 1. Check for Cloudflare header
	cfIP := c.Get("CF-Connecting-IP")
	if cfIP != "" {
		if strings.Contains(cfIP, ":") {
			ipv6 = cfIP

			xffList := strings.Split(c.Get("X-Forwarded-For"), ",")
			for _, ip := range xffList {
				ip = strings.TrimSpace(ip)
				if ip != "" && !strings.Contains(ip, ":") {
					ipv4 = ip
					break
				}
			}
		} else {
			ipv4 = cfIP

			xffList := strings.Split(c.Get("X-Forwarded-For"), ",")
			for _, ip := range xffList {
				ip = strings.TrimSpace(ip)
				if strings.Contains(ip, ":") {
					ipv6 = ip
					break
				}
			}
		}
		return ipv4, ipv6
	}

	// 2. Check for X-Forwarded-For header (standard proxy header)
	xff := c.Get("X-Forwarded-For")
	if xff != "" {
		xffList := strings.Split(xff, ",")
		clientIP := strings.TrimSpace(xffList[0])

		if strings.Contains(clientIP, ":") {
			ipv6 = clientIP
			for i := 1; i < len(xffList); i++ {
				ip := strings.TrimSpace(xffList[i])
				if ip != "" && !strings.Contains(ip, ":") {
					ipv4 = ip
					break
				}
			}
		} else {
			ipv4 = clientIP
			for i := 1; i < len(xffList); i++ {
				ip := strings.TrimSpace(xffList[i])
				if strings.Contains(ip, ":") {
					ipv6 = ip
					break
				}
			}
		}

		if ipv4 != "" || ipv6 != "" {
			return ipv4, ipv6
		}
	}

	// 3. If no proxy headers were found, use the normal IP address
	ipAddr := c.IP()

	if strings.Contains(ipAddr, ":") {
		// IPv4-mapped-IPv6 addresses (::ffff:192.168.1.1)
		if strings.Contains(ipAddr, ".") && strings.HasPrefix(ipAddr, "::ffff:") {
			ipv4 = strings.TrimPrefix(ipAddr, "::ffff:")

			if realIPv6 := c.Get("X-Real-IP"); realIPv6 != "" && strings.Contains(realIPv6, ":") {
				ipv6 = realIPv6
			}
		} else {
			ipv6 = ipAddr

			realIPv4 := c.Get("X-Real-IP")
			if realIPv4 != "" && !strings.Contains(realIPv4, ":") {
				ipv4 = realIPv4
			}
		}
	} else {
		ipv4 = ipAddr

		realIPv6 := c.Get("X-Real-IP")
		if realIPv6 != "" && strings.Contains(realIPv6, ":") {
			ipv6 = realIPv6
		}
	}

	return ipv4, ipv6
}
