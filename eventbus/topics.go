package eventbus

// TopicBlogEvents carries blog lifecycle events (created/updated/deleted).
const TopicBlogEvents = "blog-events"
