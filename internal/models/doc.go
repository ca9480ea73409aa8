// Package models lists the OpenAI chat models that can back the openai
// analyzer. Speech, image and embedding models are filtered out.
package models
