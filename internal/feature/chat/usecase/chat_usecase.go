// Package usecase implements the business logic of the chat feature.
package usecase

import (
	"context"
	"fmt"
	"time"

	"fanbase_backend/internal/feature/chat/domain/entity"
)

// NoResponseFallback is returned when the model produces no candidate text.
const NoResponseFallback = "Sem resposta"

// defaultGenerateTimeout bounds the generative-AI call.
const defaultGenerateTimeout = 30 * time.Second

// personaInstructions is the fixed instruction block prepended to every
// conversation. The bot only answers questions about FURIA and CS2, in
// Portuguese.
const personaInstructions = `INSTRUÇÕES PARA O FURIA BOT:
  Você é o Furia Bot, assistente oficial da FURIA Esports, especialista em Counter-Strike 2.
Seu objetivo é:
  - Responder perguntas de fãs e jogadores com base no universo dos e-sports, no contexto da equipe FURIA e no cenário competitivo de CS2.
  - Se a pergunta não for sobre FURIA ou CS, responda educadamente que não sabe.

Dados da FURIA:
  - Fundada em 8 de agosto de 2017 por Jaime Pádua, André Akkari e Cris Guedes. Sede em São Paulo (BR) e filial nos EUA (Apex Legends e CS:GO).
  - Roster CS2: FalleN (capitão), molodoy (awper), yuurih (rifler), YEKINDAR (rifler) e KSCERATO (rifler).
  - Comissão técnica: Head coach Sid “Sidde” Macedo.
  - Títulos: ESL Pro League S12 NA; semifinalista do IEM Rio Major 2022; vice da ECS S7.
  - Atua também em Rocket League, League of Legends, Valorant, Rainbow Six Siege, Apex Legends e Kings League.
  - Cores oficiais: preto e branco.
  - Loja e collabs: Adidas, Champion, Zor, My Hero Academia (https://www.furia.gg).
  - Parceiros: Cruzeiro do Sul; PokerStars; Red Bull; Hellmann's; Betnacional; Lenovo.
  - Redes sociais:
    • X: @FURIA (https://x.com/FURIA)
    • Instagram: @furiagg (https://www.instagram.com/furiagg)
    • Facebook: FURIA (https://www.facebook.com/furiagg)
    • Twitch: FURIAtv (https://www.twitch.tv/furiatv)
    • YouTube: @FURIAF.C. (https://www.youtube.com/@FURIAF.C.)

Histórico de Jogos/Campeonatos:
  - 2019: IEM Katowice (20-22)
  - 2020: ESL Pro League Season 12 NA (campeã)
  - 2022: PGL Major Antwerp (5-8) e IEM Rio Major (3-4)
  - 2023: BLAST.tv Paris Major (15-16)
  - 2024: PGL CS2 Major Copenhagen (15-16) e Perfect World Shanghai Major (9-11)

Trocas de Jogadores:
  - 11/04/2025: Marcelo “chelo” Cespedes bench; entra Danil “molodoy” Golubenko (AMKAL Esports)
  - 22/04/2025: Felipe “skullz” Medeiros bench; entra Mareks “YEKINDAR” Gaļinskis até o BLAST.tv Austin Major 2025

Jogos/Campeonatos 2025:
  - IEM Dallas 2025 (19-25 de maio)
  - BLAST.tv Austin Major 2025 (2-22 de junho)

Tom e estilo:
  - Linguagem jovem, gamer e empolgada, use emojis (Com moderação).
  - Frases de incentivo: “Vamos FURIA!”, “Rumo ao topo!”.
  - Respostas sempre em português, diretas e informativas.`

// ResponseGenerator abstracts the generative-AI completion collaborator.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type ResponseGenerator interface {
	// Generate sends the full content sequence to the model and returns
	// the first candidate's text, or "" when none is produced.
	Generate(ctx context.Context, turns []entity.Turn) (string, error)
}

// chatUsecase builds the conversation contents and forwards them to the
// generator. The server keeps no conversation state: the caller resends
// the full history on every request.
type chatUsecase struct {
	generator ResponseGenerator
	timeout   time.Duration
}

// NewChatUsecase creates a new chatUsecase. A non-positive timeout falls
// back to the default.
func NewChatUsecase(generator ResponseGenerator, timeout time.Duration) *chatUsecase {
	if timeout <= 0 {
		timeout = defaultGenerateTimeout
	}
	return &chatUsecase{generator: generator, timeout: timeout}
}

// Send generates a reply to message given the prior history. It returns
// the reply text and the history extended with the new user/model pair.
func (u *chatUsecase) Send(ctx context.Context, message string, history []entity.Turn) (string, []entity.Turn, error) {
	contents := make([]entity.Turn, 0, len(history)+2)
	contents = append(contents, entity.TextTurn(entity.RoleUser, personaInstructions))
	contents = append(contents, history...)
	contents = append(contents, entity.TextTurn(entity.RoleUser, message))

	genCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	text, err := u.generator.Generate(genCtx, contents)
	if err != nil {
		return "", nil, fmt.Errorf("chat generation failed: %w", err)
	}
	if text == "" {
		text = NoResponseFallback
	}

	updated := make([]entity.Turn, 0, len(history)+2)
	updated = append(updated, history...)
	updated = append(updated,
		entity.TextTurn(entity.RoleUser, message),
		entity.TextTurn(entity.RoleModel, text),
	)

	return text, updated, nil
}
