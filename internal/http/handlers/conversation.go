package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdukarim17/fluentia/internal/llm"
)

const (
	historyLimit = 10
	chunkSize    = 4096
)

type ConversationHandler struct {
	Transcriber llm.Transcriber
	Chat        llm.ChatCompleter
	Speech      llm.Synthesizer
}

// HistoryHeader carries the trimmed conversation history back to the caller
// alongside the audio stream. The JSON is base64-encoded because the reply
// text is Arabic and header values must stay ASCII.
const HistoryHeader = "X-Conversation-History"

// Converse proxies one voice turn: transcribe the uploaded audio, generate a
// reply, stream the synthesized speech back. History is caller-managed; the
// server appends the user and assistant turns and trims to the last 10.
func (h *ConversationHandler) Converse(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}
	if fh.Header.Get("Content-Type") != "audio/mpeg" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only .mp3 files are allowed."})
		return
	}

	var history []llm.Turn
	if raw := c.PostForm("history"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid history"})
			return
		}
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read audio file"})
		return
	}
	defer f.Close()

	ctx := c.Request.Context()

	transcript, err := h.Transcriber.Transcribe(ctx, f, fh.Filename)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	history = append(history, llm.Turn{Role: llm.RoleUser, Content: transcript})

	reply, err := h.Chat.Complete(ctx, transcript)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	history = append(history, llm.Turn{Role: llm.RoleAssistant, Content: reply})

	stream, err := h.Speech.Synthesize(ctx, reply)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	defer stream.Close()

	trimmed, _ := json.Marshal(llm.Trim(history, historyLimit))
	c.Header(HistoryHeader, base64.StdEncoding.EncodeToString(trimmed))
	c.Header("Content-Type", "audio/mpeg")
	c.Status(http.StatusOK)

	buf := make([]byte, chunkSize)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := stream.Read(buf)
		if n > 0 {
			if _, werr := c.Writer.Write(buf[:n]); werr != nil {
				return
			}
			c.Writer.Flush()
		}
		if err != nil {
			return
		}
	}
}
