package wine

// IdentificationPrompt is sent with every image. The reply contract is parsed by ExtractCandidate.
const IdentificationPrompt = `Identify this wine from the image. You MUST provide ALL fields in this exact JSON format:

{
  "name": "Wine Name",
  "varietal": "Grape Varietal",
  "region": "Wine Region",
  "vintage": "Year",
  "notes": "Brief tasting notes",
  "flavorProfile": {
    "potency": 3,
    "acidity": 4,
    "sweetness": 2,
    "tannins": 3,
    "fruitiness": 4
  }
}

The flavorProfile field is REQUIRED. Rate each characteristic on a scale of 1-5:
- potency: intensity/boldness (1=light, 5=bold)
- acidity: tartness (1=low, 5=high)
- sweetness: sugar level (1=dry, 5=sweet)
- tannins: drying sensation (1=soft, 5=firm)
- fruitiness: fruit flavor intensity (1=subtle, 5=fruit-forward)

Base ratings on typical characteristics of this wine type. Respond ONLY with valid JSON, no markdown formatting.`
