package catalog

import "wordrush/internal/models"

// defaultPassages is the reading library. library-master requires reading
// all 12, so the count here matches the badge requirement.
var defaultPassages = []models.ReadingPassage{
	{
		ID:    "tortoise-and-hare",
		Title: "The Tortoise and the Hare",
		Text: `Once upon a time, there was a hare who was very proud of how fast he could run. He would often tease the tortoise for being so slow.

One day, the tortoise got tired of the hare's boasting. "Let's have a race," said the tortoise. The hare laughed and agreed, thinking it would be an easy win.

When the race began, the hare zoomed ahead quickly. He was so far ahead that he decided to take a nap under a tree. "I have plenty of time," he thought.

Meanwhile, the tortoise kept moving slowly but steadily. He never stopped. He passed the sleeping hare without making a sound.

When the hare woke up, he raced to the finish line as fast as he could. But it was too late! The tortoise had already won the race.

The hare learned an important lesson that day: Slow and steady wins the race.`,
		WordCount: 150,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "Who challenged the Tortoise to a race?",
				Options:      []string{"The Tortoise", "The Hare", "The Fox"},
				CorrectIndex: 1,
			},
			{
				Question:     "Who won the race?",
				Options:      []string{"The Hare", "The Fox", "The Tortoise"},
				CorrectIndex: 2,
			},
		},
	},
	{
		ID:    "lion-and-mouse",
		Title: "The Lion and the Mouse",
		Text: `A mighty lion was sleeping in the sun when a tiny mouse ran across his paw. The lion woke up with a roar and caught the mouse under his big claw.

"Please let me go!" squeaked the mouse. "One day I will help you." The lion laughed at the idea of such a small creature helping him, but he let the mouse go.

A week later, the lion was caught in a hunter's net. He roared and roared, but he could not break free. The little mouse heard him and came running.

With her sharp teeth, the mouse chewed through the ropes until the net fell apart. The lion was free!

"Thank you, little friend," said the lion. "You were right. Even the smallest friend can be a big help."`,
		WordCount: 136,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "What caught the lion?",
				Options:      []string{"A hunter's net", "A big rock", "Another lion"},
				CorrectIndex: 0,
			},
			{
				Question:     "How did the mouse free the lion?",
				Options:      []string{"She pushed him out", "She chewed the ropes", "She called for help"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:    "ant-and-grasshopper",
		Title: "The Ant and the Grasshopper",
		Text: `All summer long, the grasshopper sang and danced in the warm sun. He watched the ant carry heavy grains of food to her nest, day after day.

"Why do you work so hard?" asked the grasshopper. "Come and sing with me!" But the ant kept working. "Winter is coming," she said. "I am storing food so I will not be hungry."

When winter arrived, the fields were cold and empty. The grasshopper had nothing to eat. He knocked on the ant's door, shivering in the snow.

The kind ant shared her food with him. "Next summer," said the grasshopper, "I will work and save, just like you."`,
		WordCount: 113,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "What did the ant do all summer?",
				Options:      []string{"Sang and danced", "Stored food", "Slept in the sun"},
				CorrectIndex: 1,
			},
			{
				Question:     "What happened to the grasshopper in winter?",
				Options:      []string{"He had nothing to eat", "He flew south", "He built a nest"},
				CorrectIndex: 0,
			},
		},
	},
	{
		ID:    "boy-who-cried-wolf",
		Title: "The Boy Who Cried Wolf",
		Text: `A shepherd boy watched the village sheep on a hill. He was bored, so he shouted, "Wolf! Wolf!" The villagers ran up the hill to help, but there was no wolf. The boy laughed and laughed.

The next day, he played the same trick, and again the villagers came running for nothing.

Then one evening, a real wolf crept out of the forest. "Wolf! Wolf!" cried the boy. But this time, nobody came. The villagers thought it was another trick.

The wolf scattered the whole flock. The boy learned that nobody believes a liar, even when he tells the truth.`,
		WordCount: 101,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "Why did nobody come when the real wolf appeared?",
				Options:      []string{"They were asleep", "They thought it was a trick", "They were afraid"},
				CorrectIndex: 1,
			},
			{
				Question:     "What was the boy watching on the hill?",
				Options:      []string{"Cows", "Goats", "Sheep"},
				CorrectIndex: 2,
			},
		},
	},
	{
		ID:    "city-mouse-country-mouse",
		Title: "The City Mouse and the Country Mouse",
		Text: `A country mouse invited his cousin from the city to dinner. He served simple food: seeds, roots, and a little corn. The city mouse turned up his nose. "Come to the city," he said. "I eat cake and cheese every day!"

So the country mouse visited the city. The table was covered with wonderful food. But just as they began to eat, a huge cat leaped at them! They ran for their lives and hid in a tiny hole.

"Cousin," said the country mouse, catching his breath, "you may have cake and cheese, but I will take my quiet seeds and corn. It is better to eat simple food in peace than a feast in fear."`,
		WordCount: 117,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "What scared the mice in the city?",
				Options:      []string{"A dog", "A cat", "A broom"},
				CorrectIndex: 1,
			},
			{
				Question:     "What did the country mouse serve for dinner?",
				Options:      []string{"Cake and cheese", "Seeds, roots, and corn", "Bread and butter"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:    "goose-golden-eggs",
		Title: "The Goose That Laid Golden Eggs",
		Text: `A farmer and his wife had a very special goose. Every morning, she laid one shining golden egg. The farmer sold the eggs, and little by little, the family grew rich.

But the farmer grew impatient. "Why wait for one egg a day?" he said. "The goose must be full of gold inside!"

So he made a terrible mistake. He cut the goose open, hoping to find a pile of treasure. But inside, the goose was just like any other goose. There was no gold at all.

Now the farmer had no goose and no golden eggs. Those who want too much, too fast, can lose everything they have.`,
		WordCount: 109,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "How often did the goose lay a golden egg?",
				Options:      []string{"Once a week", "Every morning", "Twice a day"},
				CorrectIndex: 1,
			},
			{
				Question:     "What did the farmer find inside the goose?",
				Options:      []string{"A pile of gold", "Nothing unusual", "More eggs"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:    "crow-and-pitcher",
		Title: "The Crow and the Pitcher",
		Text: `A thirsty crow found a tall pitcher with a little water at the bottom. She pushed her beak inside, but the water was too low to reach. She pushed the pitcher, but it was too heavy to tip over.

Then the crow had an idea. She picked up a small pebble and dropped it into the pitcher. Plink! The water rose a tiny bit.

She dropped in another pebble, and another, and another. With every pebble, the water rose higher and higher.

At last, the water reached the top, and the clever crow drank until she was not thirsty anymore. Where there is a will, there is a way.`,
		WordCount: 110,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "What did the crow drop into the pitcher?",
				Options:      []string{"Sticks", "Pebbles", "Leaves"},
				CorrectIndex: 1,
			},
			{
				Question:     "Why couldn't the crow drink at first?",
				Options:      []string{"The water was too low", "The pitcher was empty", "The water was frozen"},
				CorrectIndex: 0,
			},
		},
	},
	{
		ID:    "wind-and-sun",
		Title: "The Wind and the Sun",
		Text: `The wind and the sun argued about who was stronger. Just then, a traveler walked down the road wearing a warm cloak.

"Whoever makes him take off his cloak is the strongest," said the sun. The wind agreed and blew with all his might. But the harder the wind blew, the tighter the traveler wrapped his cloak around him.

Then it was the sun's turn. The sun shone gently and warmly. Soon the traveler unbuttoned his cloak. The sun shone a little warmer, and the traveler took the cloak off and carried it over his arm.

Gentleness can succeed where force fails.`,
		WordCount: 102,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "What were the wind and the sun arguing about?",
				Options:      []string{"Who was stronger", "Who was older", "Who was brighter"},
				CorrectIndex: 0,
			},
			{
				Question:     "What made the traveler take off his cloak?",
				Options:      []string{"The strong wind", "The warm sunshine", "The heavy rain"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:    "fox-and-grapes",
		Title: "The Fox and the Grapes",
		Text: `A hungry fox spotted a bunch of ripe, juicy grapes hanging from a high vine. His mouth watered. "Those grapes look delicious," he said.

He jumped as high as he could, but the grapes were out of reach. He backed up, ran, and leaped again. Still too high. He tried again and again until he was worn out.

Finally, the fox walked away with his nose in the air. "I didn't want those grapes anyway," he said. "I'm sure they are sour."

It is easy to dislike what you cannot have.`,
		WordCount: 90,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "Why couldn't the fox eat the grapes?",
				Options:      []string{"They were too high", "They were sour", "A bird took them"},
				CorrectIndex: 0,
			},
			{
				Question:     "What did the fox say as he walked away?",
				Options:      []string{"I will come back tomorrow", "The grapes are probably sour", "Someone help me reach them"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:    "little-red-hen",
		Title: "The Little Red Hen",
		Text: `The little red hen found some grains of wheat. "Who will help me plant this wheat?" she asked. "Not I," said the cat. "Not I," said the dog. "Not I," said the duck. So she planted it herself.

All summer she cared for the wheat. "Who will help me cut the wheat? Who will help me grind it into flour? Who will help me bake the bread?" Each time, the answer was the same: "Not I. Not I. Not I." So she did it all herself.

At last, the warm bread was ready. "Who will help me eat it?" she asked. "I will!" cried the cat, the dog, and the duck.

"No," said the little red hen. "I did all the work, so I shall eat it myself." And she did.`,
		WordCount: 130,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "What did the little red hen find?",
				Options:      []string{"Grains of wheat", "A loaf of bread", "A bag of flour"},
				CorrectIndex: 0,
			},
			{
				Question:     "Who helped the hen with her work?",
				Options:      []string{"The cat and the dog", "The duck", "No one"},
				CorrectIndex: 2,
			},
		},
	},
	{
		ID:    "three-little-pigs",
		Title: "The Three Little Pigs",
		Text: `Three little pigs set out to build their own houses. The first pig built his house of straw, because it was quick and easy. The second pig built his house of sticks. The third pig worked hard for many days and built his house of strong bricks.

Soon a hungry wolf came along. He huffed and puffed and blew down the straw house. He huffed and puffed and blew down the stick house. The two pigs ran to their brother's brick house.

The wolf huffed and puffed with all his might, but the brick house did not move. Tired and hungry, the wolf gave up and slunk away.

The three pigs were safe, and they learned that hard work pays off.`,
		WordCount: 120,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "Which house could the wolf not blow down?",
				Options:      []string{"The straw house", "The stick house", "The brick house"},
				CorrectIndex: 2,
			},
			{
				Question:     "How many pigs built houses?",
				Options:      []string{"Two", "Three", "Four"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:    "ugly-duckling",
		Title: "The Ugly Duckling",
		Text: `A mother duck's eggs hatched one sunny morning. Out came fluffy yellow ducklings, one after another. But the last egg, the biggest one, hatched into a gray, clumsy bird who looked nothing like the rest.

The other ducklings teased him. "You're so ugly!" they quacked. The sad little bird wandered away and spent the cold winter all alone.

When spring came, he saw beautiful white swans gliding on the lake. He lowered his head sadly, and in the water he saw his reflection. He was not an ugly duckling at all. He had grown into a beautiful swan!

The swans welcomed him, and he was never lonely again.`,
		WordCount: 107,
		Questions: []models.ComprehensionQuestion{
			{
				Question:     "What did the ugly duckling grow up to be?",
				Options:      []string{"A goose", "A swan", "A big duck"},
				CorrectIndex: 1,
			},
			{
				Question:     "When did he see his reflection in the water?",
				Options:      []string{"In spring", "In winter", "On the morning he hatched"},
				CorrectIndex: 0,
			},
		},
	},
}

// defaultWordSets are the five sight-word sets for Word Catcher, mastered in
// order. Set 1 keeps the original starter list.
var defaultWordSets = []models.SightWordSet{
	{
		ID:    1,
		Name:  "First Words",
		Words: []string{"I", "a", "am", "the", "see", "can", "go", "we", "my", "you"},
	},
	{
		ID:    2,
		Name:  "Everyday Words",
		Words: []string{"and", "to", "in", "is", "it", "up", "at", "me", "on", "he"},
	},
	{
		ID:    3,
		Name:  "Action Words",
		Words: []string{"run", "jump", "play", "look", "come", "like", "said", "here", "down", "away"},
	},
	{
		ID:    4,
		Name:  "Bigger Words",
		Words: []string{"where", "there", "little", "big", "help", "make", "find", "funny", "one", "two"},
	},
	{
		ID:    5,
		Name:  "Super Words",
		Words: []string{"because", "before", "after", "again", "every", "always", "together", "around", "under", "would"},
	},
}

// defaultShopItems are the avatar customization items
var defaultShopItems = []models.ShopItem{
	{ID: models.ItemHat, Name: "Cool Hat", Emoji: "🎩", Cost: 10},
	{ID: models.ItemGlasses, Name: "Awesome Glasses", Emoji: "🕶️", Cost: 20},
	{ID: models.ItemCape, Name: "Super Cape", Emoji: "🦸", Cost: 30},
}
