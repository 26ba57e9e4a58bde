package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>demoapps — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// OpenAPI document for every app route. A binary that mounts a single app
// serves the same document.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "demoapps", "version": "v1.0.0" },
  "components": {
    "securitySchemes": { "bearer": { "type": "http", "scheme": "bearer", "bearerFormat": "JWT" } }
  },
  "paths": {
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "UP" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "exposition" } } } },

    "/students": {
      "get": { "summary": "List students", "parameters": [{"name":"attendance","in":"query","schema":{"type":"string","enum":["Present","Absent","Given"]}}], "responses": { "200": { "description": "students" } } },
      "post": { "summary": "Create student", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "Student name is required" } } }
    },
    "/students/{id}/attendance": {
      "put": { "summary": "Update attendance", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"attendance":{"type":"string","enum":["Present","Absent","Given"]}}}}}}, "responses": { "200": { "description": "updated" }, "400": { "description": "invalid status or id" }, "404": { "description": "Student not found" } } }
    },
    "/students/summary": { "get": { "summary": "Count students per attendance status", "responses": { "200": { "description": "counts" } } } },

    "/bookmarks": {
      "get": { "summary": "List bookmarks", "parameters": [{"name":"tags","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "bookmarks" } } },
      "post": { "summary": "Create bookmark", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["url"],"properties":{"url":{"type":"string"},"date":{"type":"string"},"notes":{"type":"string"},"tags":{"type":"string"}}}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "invalid" } } }
    },
    "/bookmarks/by-tag": { "get": { "summary": "Count bookmarks per tag", "responses": { "200": { "description": "counts" } } } },
    "/bookmarks/export": { "post": { "summary": "Export bookmarks as CSV to object storage", "responses": { "201": { "description": "key, url, count" }, "503": { "description": "object storage not configured" } } } },

    "/api/game": { "post": { "summary": "Record a game result", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["result"],"properties":{"result":{"type":"string","enum":["win","loss"]}}}}}}, "responses": { "201": { "description": "Saved" }, "400": { "description": "invalid result" } } } },
    "/api/games": { "get": { "summary": "List games, newest first", "responses": { "200": { "description": "games" } } } },
    "/api/stats": { "get": { "summary": "Win/loss totals", "responses": { "200": { "description": "wins and losses" } } } },

    "/dictionary": { "post": { "summary": "Add a word", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["word"],"properties":{"word":{"type":"string"}}}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "blank" }, "409": { "description": "exists" } } } },
    "/dictionary/bulk": { "post": { "summary": "Add many words", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"words":{"type":"array","items":{"type":"string"}}}}}}}, "responses": { "201": { "description": "message and count" }, "400": { "description": "invalid words" } } } },
    "/dictionary/check/{word}": { "get": { "summary": "Check a word and suggest alternatives", "parameters": [{"name":"word","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "exists or suggestions" } } } },
    "/dictionary/histogram": { "get": { "summary": "Word counts by length and first letter", "responses": { "200": { "description": "histogram" } } } },

    "/expenses": {
      "get": { "summary": "List expenses, newest first", "parameters": [{"name":"category","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "expenses" } } },
      "post": { "summary": "Create expense", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["description","amount","category"],"properties":{"date":{"type":"string","format":"date-time"},"description":{"type":"string"},"amount":{"type":"number","minimum":0},"category":{"type":"string"}}}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "invalid" } } }
    },
    "/expenses/sms": { "post": { "summary": "Create expense from SMS text", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["text"],"properties":{"text":{"type":"string"}}}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "invalid" } } } },
    "/expenses/stats/by-category": { "get": { "summary": "Total per category", "responses": { "200": { "description": "totals" } } } },
    "/expenses/stats/last-seven-days": { "get": { "summary": "Total over the last seven days", "responses": { "200": { "description": "total" } } } },

    "/api/mouse-events": {
      "get": { "summary": "List mouse events", "responses": { "200": { "description": "events" } } },
      "post": { "summary": "Save a batch of mouse events", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"events":{"type":"array","items":{"type":"object","properties":{"x":{"type":"number"},"y":{"type":"number"},"count":{"type":"integer"},"timestamp":{"type":"string","format":"date-time"}}}}}}}}}, "responses": { "201": { "description": "saved" }, "400": { "description": "Events should be an array" } } }
    },
    "/api/mouse-events/heatmap": { "get": { "summary": "Counts bucketed on a grid", "parameters": [{"name":"cell","in":"query","schema":{"type":"integer","default":20}}], "responses": { "200": { "description": "buckets" } } } },

    "/api/auth/register": { "post": { "summary": "Register", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["username","email","password"],"properties":{"username":{"type":"string"},"email":{"type":"string"},"password":{"type":"string"}}}}}}, "responses": { "201": { "description": "token" }, "409": { "description": "User already exists" } } } },
    "/api/auth/login": { "post": { "summary": "Login", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["email","password"],"properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}}, "responses": { "200": { "description": "token" }, "400": { "description": "Invalid credentials" } } } },
    "/api/users/me": { "get": { "summary": "Current user", "security": [{"bearer":[]}], "responses": { "200": { "description": "user" }, "401": { "description": "Authentication required" }, "404": { "description": "User not found" } } } },
    "/api/texts": {
      "get": { "summary": "Texts by difficulty", "parameters": [{"name":"difficulty","in":"query","schema":{"type":"string","enum":["easy","medium","hard"],"default":"easy"}}], "responses": { "200": { "description": "texts" } } },
      "post": { "summary": "Add a text", "security": [{"bearer":[]}], "responses": { "201": { "description": "created" }, "401": { "description": "Authentication required" } } }
    },
    "/api/results": {
      "get": { "summary": "Caller's results, newest first", "security": [{"bearer":[]}], "responses": { "200": { "description": "results" } } },
      "post": { "summary": "Save a result", "security": [{"bearer":[]}], "responses": { "201": { "description": "created" }, "400": { "description": "invalid" } } }
    },
    "/api/results/recent": { "get": { "summary": "Caller's last 10 results", "security": [{"bearer":[]}], "responses": { "200": { "description": "results" } } } },
    "/api/results/summary": { "get": { "summary": "Averages per difficulty", "security": [{"bearer":[]}], "responses": { "200": { "description": "summary" } } } }
  }
}`
