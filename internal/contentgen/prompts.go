package contentgen

import (
	"context"
	"fmt"
	"strings"
)

// ReplyContext describes an inbound comment or message awaiting a reply
type ReplyContext struct {
	PageName   string
	AuthorName string
	Text       string
	Theme      string
}

// CorrectiveInput is what the monitor knows about an underperforming strategy
type CorrectiveInput struct {
	Theme        string
	Goal         string
	AverageReach float64
	Threshold    float64
	PostCount    int
}

// CorrectivePost is the emergency post proposed by a corrective action
type CorrectivePost struct {
	Title        string `json:"title" validate:"required"`
	Caption      string `json:"caption" validate:"required"`
	ImageConcept string `json:"image_concept"`
}

// CorrectiveAction is the model's diagnosis of an underperforming strategy plus one new post
type CorrectiveAction struct {
	Diagnosis string         `json:"diagnosis" validate:"required"`
	Post      CorrectivePost `json:"post" validate:"required"`
}

// ProposalInput is the admin's request for a new strategy
type ProposalInput struct {
	StrategyType string
	Goal         string
	PageName     string
	PostCount    int
}

type ProposedPost struct {
	Title    string `json:"title" validate:"required"`
	Caption  string `json:"caption" validate:"required"`
	ImageURL string `json:"image_url"`
}

// StrategyProposal is an AI drafted campaign plan awaiting admin approval
type StrategyProposal struct {
	Theme           string         `json:"theme" validate:"required"`
	Goal            string         `json:"goal" validate:"required"`
	ExpectedOutcome string         `json:"expected_outcome"`
	ContentPlan     []ProposedPost `json:"content_plan" validate:"required,min=1,dive"`
}

const defaultProposalPosts = 5

// GenerateCommentReply drafts a short public reply to a comment
func (g *Generator) GenerateCommentReply(ctx context.Context, in ReplyContext) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "You manage the Facebook page %q for a real estate company.\n", in.PageName)
	if in.Theme != "" {
		fmt.Fprintf(&b, "The current campaign theme is %q.\n", in.Theme)
	}
	fmt.Fprintf(&b, "%s commented: %q\n", displayName(in.AuthorName), in.Text)
	b.WriteString("Write a reply of at most two sentences. Sound like a friendly person on the team, not a bot. ")
	b.WriteString("Do not use hashtags or emojis. Do not sign the message. Return only the reply text.")

	text, err := g.GenerateContent(ctx, b.String())
	if err != nil {
		return "", err
	}
	return cleanReply(text), nil
}

// GenerateMessageReply drafts a helpful private reply to a direct message
func (g *Generator) GenerateMessageReply(ctx context.Context, in ReplyContext) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "You answer direct messages for the Facebook page %q of a real estate company.\n", in.PageName)
	fmt.Fprintf(&b, "%s wrote: %q\n", displayName(in.AuthorName), in.Text)
	b.WriteString("Write a helpful reply under 80 words. If they ask about a property, invite them to share ")
	b.WriteString("their budget and preferred location or to book a viewing. Do not invent prices or addresses. ")
	b.WriteString("Return only the reply text.")

	text, err := g.GenerateContent(ctx, b.String())
	if err != nil {
		return "", err
	}
	return cleanReply(text), nil
}

// GenerateCorrectiveAction diagnoses a strategy whose reach fell below threshold and proposes one emergency post
func (g *Generator) GenerateCorrectiveAction(ctx context.Context, in CorrectiveInput) (CorrectiveAction, error) {
	prompt := fmt.Sprintf(`You are a social media strategist for a real estate company.
A campaign with theme %q and goal %q is underperforming.
Across %d published posts the average reach is %.1f people, below the target of %.1f.

Diagnose the most likely cause in two or three sentences, then write one new post to recover reach.
Respond with JSON only, in this exact shape:
{"diagnosis": "...", "post": {"title": "...", "caption": "...", "image_concept": "..."}}`,
		in.Theme, in.Goal, in.PostCount, in.AverageReach, in.Threshold)

	var action CorrectiveAction
	if err := g.generateJSON(ctx, prompt, &action); err != nil {
		return CorrectiveAction{}, err
	}
	return action, nil
}

// GenerateStrategyProposal drafts a campaign plan for the admin to approve
func (g *Generator) GenerateStrategyProposal(ctx context.Context, in ProposalInput) (StrategyProposal, error) {
	count := in.PostCount
	if count <= 0 {
		count = defaultProposalPosts
	}
	prompt := fmt.Sprintf(`You are a social media strategist for a real estate company running the Facebook page %q.
Plan a %s campaign whose goal is: %q.
Propose a theme, restate the goal, describe the expected outcome, and write %d posts.
Respond with JSON only, in this exact shape:
{"theme": "...", "goal": "...", "expected_outcome": "...", "content_plan": [{"title": "...", "caption": "...", "image_url": ""}]}`,
		in.PageName, in.StrategyType, in.Goal, count)

	var proposal StrategyProposal
	if err := g.generateJSON(ctx, prompt, &proposal); err != nil {
		return StrategyProposal{}, err
	}
	return proposal, nil
}

func displayName(name string) string {
	if name == "" {
		return "Someone"
	}
	return name
}

// cleanReply strips wrapping quotes and whitespace models tend to add
func cleanReply(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}
	return text
}
